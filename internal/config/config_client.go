package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to unset values.
const (
	DefaultHTTPAddress      = "http://localhost:8080"
	DefaultRequestTimeout   = 10 * time.Second
	DefaultDSN              = "stats-sync.db"
	DefaultPlaytimeInterval = time.Minute
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is where JSON logs are appended.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the account service base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientRedis contains redis connection settings.
type ClientRedis struct {
	// URL is the redis connection URL; empty selects SQLite.
	URL string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB    ClientDB
	Redis ClientRedis
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PlaytimeInterval defines how often the playtime job flushes.
	PlaytimeInterval time.Duration
}

// ClientTelemetry contains tracing and metrics settings.
type ClientTelemetry struct {
	OTLPEndpoint   string
	MetricsAddress string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Adapter   ClientAdapter
	Storage   ClientStorage
	Workers   ClientWorkers
	Telemetry ClientTelemetry
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. flagCfg is the value returned by [BindFlags].
//
// It loads the base config via [GetStructuredConfig], applies defaults to
// unset values, and validates the resulting [ClientConfig].
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    orDefault(cfg.Adapter.HTTPAddress, DefaultHTTPAddress),
			RequestTimeout: orDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
		},
		Storage: ClientStorage{
			DB:    ClientDB{DSN: cfg.Storage.DB.DSN},
			Redis: ClientRedis{URL: cfg.Storage.Redis.URL},
		},
		Workers: ClientWorkers{
			PlaytimeInterval: orDefault(cfg.Workers.PlaytimeInterval, DefaultPlaytimeInterval),
		},
		Telemetry: ClientTelemetry{
			OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
			MetricsAddress: cfg.Telemetry.MetricsAddress,
		},
	}

	if clientCfg.Storage.Redis.URL == "" {
		clientCfg.Storage.DB.DSN = orDefault(clientCfg.Storage.DB.DSN, DefaultDSN)
	}

	return clientCfg
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
