package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with values from PODSTREAM_* environment
// variables. Unset variables leave the existing values untouched.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
