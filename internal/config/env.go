package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the environment into a fresh [StructuredConfig]. Variable
// names are the section prefix plus the field name, e.g. ADAPTER_ADDRESS,
// STORAGE_REDIS_URL or WORKERS_PLAYTIME_INTERVAL; CONFIG points at a JSON
// file.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
