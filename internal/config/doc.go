// Package config loads runtime configuration for the palette client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the client database file
//	-l string   log level (debug|info|warn|error)
//
// # JSON schema
//
//	{
//	  "database_path": "palette.db",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — holds DatabasePath and LogLevel
//   - func LoadConfig() *Config      — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()  — sets sensible defaults
package config
