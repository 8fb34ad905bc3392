package config

import (
	"encoding/json"
	"os"

	"github.com/paletteapp/palette/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. If neither flag is present, nothing is loaded.
// Read or unmarshal errors panic (caller should recover if desired). Fields
// absent from the JSON keep their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
