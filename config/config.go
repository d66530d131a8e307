package config

import (
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Token modes understood by the verify-otp handler.
const (
	TokenModeDemo = "demo"
	TokenModeJWT  = "jwt"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	ServiceName string
	Env         string
	Host        string
	Port        string

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	RateLimitMax    int
	RateLimitWindow time.Duration
	BodyLimitMB     int

	// Location decides which calendar day a sale belongs to in the daily report.
	Location *time.Location

	TokenMode          string
	JWTSecret          string
	JWTExpirationHours int
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.UTC
	}
	return &Config{
		ServiceName:        "munshiji-api",
		Env:                "development",
		Host:               "0.0.0.0",
		Port:               "3000",
		LogLevel:           "info",
		LogMaxSizeMB:       100,
		LogMaxBackups:      7,
		LogMaxAgeDays:      30,
		RateLimitMax:       100,
		RateLimitWindow:    15 * time.Minute,
		BodyLimitMB:        10,
		Location:           loc,
		TokenMode:          TokenModeDemo,
		JWTSecret:          "munshiji-demo-secret",
		JWTExpirationHours: 72,
	}
}

// Load reads the .env file if present and overlays environment variables on
// the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Default()
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)
	cfg.Env = getEnv("APP_ENV", cfg.Env)
	cfg.Host = getEnv("HOST", cfg.Host)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	var err error
	if cfg.LogMaxSizeMB, err = getEnvAsInt("LOG_MAX_SIZE_MB", cfg.LogMaxSizeMB); err != nil {
		return nil, err
	}
	if cfg.LogMaxBackups, err = getEnvAsInt("LOG_MAX_BACKUPS", cfg.LogMaxBackups); err != nil {
		return nil, err
	}
	if cfg.LogMaxAgeDays, err = getEnvAsInt("LOG_MAX_AGE_DAYS", cfg.LogMaxAgeDays); err != nil {
		return nil, err
	}
	if cfg.RateLimitMax, err = getEnvAsInt("RATE_LIMIT_MAX", cfg.RateLimitMax); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getEnvAsDuration("RATE_LIMIT_WINDOW", cfg.RateLimitWindow); err != nil {
		return nil, err
	}
	if cfg.BodyLimitMB, err = getEnvAsInt("BODY_LIMIT_MB", cfg.BodyLimitMB); err != nil {
		return nil, err
	}
	if cfg.JWTExpirationHours, err = getEnvAsInt("JWT_EXPIRATION_HOURS", cfg.JWTExpirationHours); err != nil {
		return nil, err
	}

	if tz, ok := os.LookupEnv("STORE_TIMEZONE"); ok && tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid STORE_TIMEZONE %q", tz)
		}
		cfg.Location = loc
	}

	cfg.TokenMode = getEnv("AUTH_TOKEN_MODE", cfg.TokenMode)
	if cfg.TokenMode != TokenModeDemo && cfg.TokenMode != TokenModeJWT {
		return nil, errors.Errorf("unknown AUTH_TOKEN_MODE %q", cfg.TokenMode)
	}
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// BodyLimit is the maximum request body size in bytes.
func (c *Config) BodyLimit() int {
	return c.BodyLimitMB * 1024 * 1024
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := cast.ToIntE(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return n, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := cast.ToDurationE(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return d, nil
}
