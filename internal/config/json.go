package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/podstream/podstream-cli/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// given as a duration string ("12s", "1m"); after parsing, values are copied
// into the runtime Config.
type jsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	RequestTimeout     string `json:"request_timeout"`
	DatabaseDSN        string `json:"database_dsn"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c/-config flags via
// flagx.JSONConfigFlags; when absent, no JSON is loaded. Read or unmarshal
// errors panic (caller may recover). Empty fields in the file leave the
// corresponding Config values untouched.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
