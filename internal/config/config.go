package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database — empty means "run without storage": every read degrades to
	// null/empty and every write is a no-op. Useful for local frontend work.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis — empty disables the public catalog cache.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Session
	SessionSecret     string `mapstructure:"SESSION_SECRET"`
	SessionCookieName string `mapstructure:"SESSION_COOKIE_NAME"`
	SessionTTLHours   int    `mapstructure:"SESSION_TTL_HOURS"`

	// GatewaySecret authenticates the OAuth gateway's session-mint calls via
	// the X-Gateway-Secret header. Empty (local development) disables the
	// check — anyone can mint a session for any openId, so production must
	// set it.
	GatewaySecret string `mapstructure:"GATEWAY_SECRET"`

	// OwnerOpenID is the external identity that is always granted the admin
	// role when its user row is upserted.
	OwnerOpenID string `mapstructure:"OWNER_OPEN_ID"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("SESSION_SECRET", "dev-session-secret")
	viper.SetDefault("SESSION_COOKIE_NAME", "vitrine_session")
	viper.SetDefault("SESSION_TTL_HOURS", 720)
	viper.SetDefault("GATEWAY_SECRET", "")
	viper.SetDefault("OWNER_OPEN_ID", "")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
