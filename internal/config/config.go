// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-stats-sync client. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment variables
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the account service address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the backends used to persist the last active user id.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Telemetry holds tracing and metrics exposition settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App contains process-level settings.
type App struct {
	// LogFile is the file the client appends its JSON logs to. Empty means
	// a "logs" file next to the executable.
	LogFile string `env:"LOG_FILE"`
}

// Adapter contains settings for the account service client.
type Adapter struct {
	// HTTPAddress is the base URL of the account service.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the last-user persistence backends.
// When Redis.URL is set it takes precedence over the SQLite DSN.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds the local SQLite settings.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	DSN string `env:"DSN"`
}

// Redis holds the redis connection settings.
type Redis struct {
	// URL is a redis:// connection URL.
	URL string `env:"URL"`
}

// Workers contains background job settings.
type Workers struct {
	// PlaytimeInterval defines how often accumulated play time is flushed.
	PlaytimeInterval time.Duration `env:"PLAYTIME_INTERVAL"`
}

// Telemetry contains observability settings.
type Telemetry struct {
	// OTLPEndpoint is the host:port of an OTLP/HTTP trace collector. Empty
	// disables span export.
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`

	// MetricsAddress is the host:port the Prometheus handler listens on
	// while long-running commands execute. Empty disables it.
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// GetStructuredConfig builds the merged configuration from flags, environment
// variables and the optional JSON file. flagCfg is the value returned by
// [BindFlags] after the flag set was parsed; it may be nil.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		build()
}
