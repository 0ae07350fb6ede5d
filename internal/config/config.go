package config

import "time"

// Config holds runtime settings for the Podstream account CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - RequestTimeout: per-request deadline applied by the HTTP client.
//   - DatabaseDSN: path/DSN of the local SQLite cache.
type Config struct {
	ServerEndpointAddr string        `env:"PODSTREAM_SERVER_ADDR"`
	RequestTimeout     time.Duration `env:"PODSTREAM_REQUEST_TIMEOUT"`
	DatabaseDSN        string        `env:"PODSTREAM_DATABASE_DSN"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:3001"
	c.RequestTimeout = 12 * time.Second
	c.DatabaseDSN = "account.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
