// Package config loads runtime configuration for the Podstream account CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. PODSTREAM_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-t int      request timeout (seconds)
//	-d string   local database path
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:3001",
//	  "request_timeout": "12s",
//	  "database_dsn": "account.db"
//	}
package config
