// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP server listens on (e.g. :8080).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// APIToken is the static bearer token required on all routes except /health.
	// Empty disables the gate (local development only).
	APIToken string `mapstructure:"API_TOKEN"`
	// CountryPrefix is the recognized 2-digit country prefix stripped from 12-digit
	// phone numbers during normalization (e.g. "52").
	CountryPrefix string `mapstructure:"COUNTRY_PREFIX"`
	// OTPReturnToClient when true enables dev OTP mode: the plaintext code is returned
	// in the /link/start response instead of being sent by SMS. Must not be true when
	// Env is production (rejected at startup).
	OTPReturnToClient bool `mapstructure:"OTP_RETURN_TO_CLIENT"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
	// SMSLocalAPIKey is the API key for SMS Local OTP delivery. Required when dev OTP
	// mode is off and SMS delivery is expected.
	SMSLocalAPIKey string `mapstructure:"SMS_LOCAL_API_KEY"`
	// SMSLocalSender is the optional sender ID for SMS Local.
	SMSLocalSender string `mapstructure:"SMS_LOCAL_SENDER"`
	// SMSLocalBaseURL is the SMS Local API base URL.
	SMSLocalBaseURL string `mapstructure:"SMS_LOCAL_BASE_URL"`
	// RateLimitPerMinute is the per-client request budget; 0 disables rate limiting.
	RateLimitPerMinute int `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	// OTLPEndpoint is the OTLP collector endpoint (e.g. http://localhost:4317).
	// Empty disables telemetry export.
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// OTLPInsecure forces plaintext OTLP export even for https endpoints.
	OTLPInsecure bool `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	// ServiceName is the service.name resource attribute for telemetry.
	ServiceName string `mapstructure:"SERVICE_NAME"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("API_TOKEN", "")
	v.SetDefault("COUNTRY_PREFIX", "52")
	v.SetDefault("OTP_RETURN_TO_CLIENT", false)
	v.SetDefault("APP_ENV", "")
	v.SetDefault("SMS_LOCAL_BASE_URL", "https://www.smslocal.com/dev/bulkV2")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 0)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("SERVICE_NAME", "nio-menu-api")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}

	if cfg.OTPReturnToClient && cfg.Env == "production" {
		return nil, errors.New("config: OTP_RETURN_TO_CLIENT must not be true when APP_ENV=production")
	}

	if len(cfg.CountryPrefix) != 2 {
		return nil, errors.New("config: COUNTRY_PREFIX must be exactly 2 digits")
	}
	if _, err := strconv.Atoi(cfg.CountryPrefix); err != nil {
		return nil, errors.New("config: COUNTRY_PREFIX must be exactly 2 digits")
	}

	if cfg.RateLimitPerMinute < 0 {
		return nil, errors.New("config: RATE_LIMIT_PER_MINUTE must not be negative")
	}

	return &cfg, nil
}
