package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryFee(t *testing.T) {
	assert.Equal(t, 700, DeliveryFee("hadda"))
	assert.Equal(t, 500, DeliveryFee("tahrir"))
	assert.Equal(t, 1500, DeliveryFee("hazeez"))
}

func TestDeliveryFeeUnknownArea(t *testing.T) {
	assert.Equal(t, 0, DeliveryFee("mars"))
	assert.Equal(t, 0, DeliveryFee(""))
}

func TestAreaByID(t *testing.T) {
	area, ok := AreaByID("airport")
	require.True(t, ok)
	assert.Equal(t, "Airport", area.NameEN)
	assert.Equal(t, "المطار", area.NameAR)
	assert.Equal(t, 1200, area.Fee)

	_, ok = AreaByID("nowhere")
	assert.False(t, ok)
}

func TestAreaDisplayNameFallsBackToRawID(t *testing.T) {
	assert.Equal(t, "Hadda", AreaDisplayName("hadda"))
	assert.Equal(t, "custom-zone", AreaDisplayName("custom-zone"))
}

func TestDeliveryAreaIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(DeliveryAreas))
	for _, a := range DeliveryAreas {
		assert.False(t, seen[a.ID], "duplicate area id %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.NameAR)
		assert.NotEmpty(t, a.NameEN)
	}
}
