package config

// Config holds runtime settings for the palette client.
//
// Fields:
//   - DatabasePath: filesystem path of the client-local database.
//   - LogLevel: minimum level emitted by the logger (debug|info|warn|error).
type Config struct {
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "palette.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
