package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config is read from the environment; flags override it.
type config struct {
	DBPath       string `env:"ENROLL_DB_PATH"       envDefault:"enroll.db"`
	StorageKey   string `env:"ENROLL_STORAGE_KEY"   envDefault:"techForGirlsSubmitted"`
	ShareBaseURL string `env:"ENROLL_SHARE_BASE_URL"`
	ShareMessage string `env:"ENROLL_SHARE_MESSAGE"`
	Verbose      bool   `env:"ENROLL_VERBOSE"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
