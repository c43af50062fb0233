// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Airports AirportsConfig
	Amadeus  AmadeusConfig
	Deeplink DeeplinkConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// RedisConfig holds session store settings.
type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD" envDefault:""`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// AirportsConfig holds the airport lookup API settings.
type AirportsConfig struct {
	BaseURL string        `env:"AIRPORTS_BASE_URL,required"`
	Timeout time.Duration `env:"AIRPORTS_TIMEOUT" envDefault:"5s"`
}

// AmadeusConfig holds the flight-offers API settings.
type AmadeusConfig struct {
	BaseURL      string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	AuthURL      string        `env:"AMADEUS_AUTH_URL" envDefault:"https://test.api.amadeus.com/v1/security/oauth2/token"`
	ClientID     string        `env:"AMADEUS_CLIENT_ID,required"`
	ClientSecret string        `env:"AMADEUS_CLIENT_SECRET,required"`
	Timeout      time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"10s"`
	MaxResults   int           `env:"AMADEUS_MAX_RESULTS" envDefault:"10"`
}

// DeeplinkConfig holds the market parameters for the summary deep link.
type DeeplinkConfig struct {
	BaseURL  string `env:"DEEPLINK_BASE_URL,required"`
	Country  string `env:"DEEPLINK_COUNTRY" envDefault:"US"`
	Currency string `env:"DEEPLINK_CURRENCY" envDefault:"USD"`
	Locale   string `env:"DEEPLINK_LOCALE" envDefault:"en-US"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env               string `env:"APP_ENV" envDefault:"development"`
	MaxAirportChoices int    `env:"MAX_AIRPORT_CHOICES" envDefault:"11"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Redis.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if cfg.Airports.Timeout <= 0 {
		return fmt.Errorf("AIRPORTS_TIMEOUT must be positive")
	}
	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}
	if cfg.Amadeus.MaxResults < 1 {
		return fmt.Errorf("AMADEUS_MAX_RESULTS must be at least 1, got %d", cfg.Amadeus.MaxResults)
	}

	if cfg.App.MaxAirportChoices < 1 {
		return fmt.Errorf("MAX_AIRPORT_CHOICES must be at least 1, got %d", cfg.App.MaxAirportChoices)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
