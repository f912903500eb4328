package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int

	target *string
}

// BindFlags registers every configuration flag on fs and returns the
// StructuredConfig the parsed values are written into. The returned value is
// only meaningful after fs has been parsed, which cobra does before running
// a command.
//
// Flags:
//
//	-a, --address            account service base URL
//	    --request-timeout    request timeout (e.g. "10s")
//	    --dsn                SQLite DSN for local session state
//	    --redis-url          redis URL, overrides --dsn
//	    --playtime-interval  play time flush interval (e.g. "1m")
//	    --log-file           log file path
//	    --otlp-endpoint      OTLP/HTTP trace collector host:port
//	    --metrics-address    Prometheus listen address host:port
//	-c, --config             JSON config file path
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "Account service base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Storage.DB.DSN, "dsn", "", "SQLite DSN for local session state")
	fs.StringVar(&cfg.Storage.Redis.URL, "redis-url", "", "Redis URL for local session state")
	fs.DurationVar(&cfg.Workers.PlaytimeInterval, "playtime-interval", 0, "Play time flush interval (e.g., 1m)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Telemetry.OTLPEndpoint, "otlp-endpoint", "", "OTLP/HTTP trace collector host:port")
	fs.Var(&NetAddress{target: &cfg.Telemetry.MetricsAddress}, "metrics-address", "Prometheus listen address host:port")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	if a.target != nil {
		*a.target = a.String()
	}
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
