package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "ali777", cfg.AdminUsername)
	assert.Equal(t, "123ali", cfg.AdminPassword)
	assert.Equal(t, []string{"ali777@kado.ye"}, cfg.AdminEmails)
	assert.False(t, cfg.StockGuard)
}

func TestIsAdminEmail(t *testing.T) {
	cfg := Config{AdminEmails: []string{"ali777@kado.ye", "boss@kado.ye"}}

	assert.True(t, cfg.IsAdminEmail("ali777@kado.ye"))
	assert.True(t, cfg.IsAdminEmail("BOSS@KADO.YE"), "allow-list check is case-insensitive")
	assert.False(t, cfg.IsAdminEmail("visitor@user.com"))
}

func TestAdminEmail(t *testing.T) {
	cfg := Config{AdminEmails: []string{"first@kado.ye", "second@kado.ye"}}
	assert.Equal(t, "first@kado.ye", cfg.AdminEmail())

	assert.Equal(t, "", Config{}.AdminEmail())
}
