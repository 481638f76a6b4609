package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string   `mapstructure:"PORT"`
	Env               string   `mapstructure:"ENV"`
	GatewayBaseURL    string   `mapstructure:"GATEWAY_BASE_URL"`
	GatewayAPIKey     string   `mapstructure:"GATEWAY_API_KEY"`
	GatewayTimeoutSec int      `mapstructure:"GATEWAY_TIMEOUT_SEC"`
	DatabaseURL       string   `mapstructure:"DATABASE_URL"`
	DBMaxConns        int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns        int32    `mapstructure:"DB_MIN_CONNS"`
	AuthIssuer        string   `mapstructure:"AUTH_ISSUER"`
	AuthJWKSURL       string   `mapstructure:"AUTH_JWKS_URL"`
	AuthAudience      string   `mapstructure:"AUTH_AUDIENCE"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS      float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int      `mapstructure:"RATE_LIMIT_BURST"`
	OutboxPollSec     int      `mapstructure:"OUTBOX_POLL_SEC"`
	OutboxMaxAttempts int      `mapstructure:"OUTBOX_MAX_ATTEMPTS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("GATEWAY_TIMEOUT_SEC", 15)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("OUTBOX_POLL_SEC", 5)
	v.SetDefault("OUTBOX_MAX_ATTEMPTS", 8)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("GATEWAY_BASE_URL")
	v.BindEnv("GATEWAY_API_KEY")
	v.BindEnv("GATEWAY_TIMEOUT_SEC")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("AUTH_ISSUER")
	v.BindEnv("AUTH_JWKS_URL")
	v.BindEnv("AUTH_AUDIENCE")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("OUTBOX_POLL_SEC")
	v.BindEnv("OUTBOX_MAX_ATTEMPTS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.GatewayBaseURL == "" {
		return nil, fmt.Errorf("GATEWAY_BASE_URL is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GatewayTimeout returns the Entity Gateway request timeout.
func (c *Config) GatewayTimeout() time.Duration {
	return time.Duration(c.GatewayTimeoutSec) * time.Second
}

// OutboxPollInterval returns how often the outbox dispatcher wakes up.
func (c *Config) OutboxPollInterval() time.Duration {
	return time.Duration(c.OutboxPollSec) * time.Second
}

// Validate checks that the configuration is safe to run. Outside development
// AUTH_ISSUER and AUTH_JWKS_URL must be set so real JWT authentication is
// enforced, and the Gateway API key must be present.
func (c *Config) Validate() error {
	if c.IsDev() {
		return nil
	}
	if c.AuthIssuer == "" {
		return fmt.Errorf("AUTH_ISSUER is required when ENV=%q", c.Env)
	}
	if c.AuthJWKSURL == "" {
		return fmt.Errorf("AUTH_JWKS_URL is required when ENV=%q", c.Env)
	}
	if c.GatewayAPIKey == "" {
		return fmt.Errorf("GATEWAY_API_KEY is required when ENV=%q", c.Env)
	}
	return nil
}
