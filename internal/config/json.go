package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lifecalc/internal/flagx"
	"github.com/dmitrijs2005/lifecalc/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DataDir      string          `json:"data_dir"`
	DatabaseFile string          `json:"database_file"`
	SecretKey    string          `json:"secret_key"`
	SessionTTL   *timex.Duration `json:"session_ttl"`
	LogLevel     string          `json:"log_level"`
	SeedDemoUser *bool           `json:"seed_demo_user"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Without
// either flag it does nothing. Read and unmarshal errors panic.
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

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.SeedDemoUser != nil {
		cfg.SeedDemoUser = *jc.SeedDemoUser
	}
}
