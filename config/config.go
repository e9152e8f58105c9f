package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the API. Values come from an optional
// config/config.json file and are overridden by environment variables.
type Config struct {
	Port          string   `mapstructure:"port"`
	JWTSecret     string   `mapstructure:"jwt_secret"`
	AdminUsername string   `mapstructure:"admin_username"`
	AdminPassword string   `mapstructure:"admin_password"`
	AdminEmails   []string `mapstructure:"admin_emails"`
	StockGuard    bool     `mapstructure:"stock_guard"`
}

func Load() (Config, error) {
	vp := viper.New()

	vp.SetConfigName("config")
	vp.SetConfigType("json")
	vp.AddConfigPath("config")

	vp.SetDefault("port", "8080")
	vp.SetDefault("jwt_secret", "")
	vp.SetDefault("admin_username", "ali777")
	vp.SetDefault("admin_password", "123ali")
	vp.SetDefault("admin_emails", []string{"ali777@kado.ye"})
	vp.SetDefault("stock_guard", false)

	vp.AutomaticEnv()
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := vp.ReadInConfig(); err != nil {
		// Missing config file is fine, the defaults and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// IsAdminEmail reports whether the given email is on the admin allow-list.
func (c Config) IsAdminEmail(email string) bool {
	for _, e := range c.AdminEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

// AdminEmail returns the primary admin email, used for the denormalized
// profile of the configured admin credential pair.
func (c Config) AdminEmail() string {
	if len(c.AdminEmails) > 0 {
		return c.AdminEmails[0]
	}
	return ""
}
