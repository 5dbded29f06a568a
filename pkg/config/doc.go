// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for reading .env files with
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type Config struct {
//		PanelsFile string `env:"DASHBOARD_PANELS_FILE" envDefault:"panels.yaml"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Errors wrap ErrParsingConfig, ErrLoadingEnv or ErrNilPointer and can be
// matched with errors.Is.
package config
