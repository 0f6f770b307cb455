package config

import "time"

// Config holds runtime settings for the lifecalc CLI. An empty SecretKey
// means the random secret stored in the database is used.
type Config struct {
	DataDir      string
	DatabaseFile string
	SecretKey    string
	SessionTTL   time.Duration
	LogLevel     string
	SeedDemoUser bool
}

// LoadDefaults populates c with defaults suitable for local use.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.DatabaseFile = "lifecalc.db"
	c.SecretKey = ""
	c.SessionTTL = 24 * time.Hour
	c.LogLevel = "info"
	c.SeedDemoUser = true
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
