package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	OpenSea OpenSeaConfig `mapstructure:"opensea"`
	Sentry  SentryConfig  `mapstructure:"sentry"`
}

type AppConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"` // e.g., "local", "production"
}

type OpenSeaConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

// LoadConfig reads configuration from .env file, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. Load .env file into the process environment (if it exists)
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, relying on System Env Vars")
	}

	// 2. Set defaults
	v.SetDefault("app.port", ":8080")
	v.SetDefault("app.env", "local")

	v.SetDefault("opensea.base_url", "https://api.opensea.io/api/v1")
	v.SetDefault("opensea.api_key", "")
	v.SetDefault("opensea.timeout", "10s")

	v.SetDefault("sentry.dsn", "")

	// 3. Configure Viper to read environment variables
	// Maps dot-notation to underscores (e.g., "opensea.api_key" -> "OPENSEA_API_KEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Explicitly bind env vars to keys so flat variables reach the nested struct
	bindEnv(v, "app.port", "app.env")
	bindEnv(v, "opensea.base_url", "opensea.api_key", "opensea.timeout")
	bindEnv(v, "sentry.dsn")

	// 5. Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %v", err)
	}

	// 6. Basic validation
	if cfg.OpenSea.BaseURL == "" {
		return nil, fmt.Errorf("opensea base URL cannot be empty")
	}
	if cfg.OpenSea.Timeout <= 0 {
		return nil, fmt.Errorf("opensea timeout must be positive, got %s", cfg.OpenSea.Timeout)
	}

	return &cfg, nil
}

// bindEnv is a helper to bind multiple keys at once
func bindEnv(v *viper.Viper, keys ...string) {
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			log.Printf("Could not bind env var for key %s: %v", key, err)
		}
	}
}
