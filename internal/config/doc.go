// Package config loads runtime configuration for the lifecalc CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   directory holding the database file
//	-f string   database file name (":memory:" keeps nothing on disk)
//	-s string   secret used to sign session tokens (default: per-database random)
//	-t int      session lifetime (hours)
//	-l string   log level: debug, info, warn or error
//	-demo       create the demo account on an empty database
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "24h" or integer
// nanoseconds. Keys that are absent leave the default untouched:
//
//	{
//	  "data_dir": "data",
//	  "database_file": "lifecalc.db",
//	  "secret_key": "change-me",
//	  "session_ttl": "24h",
//	  "log_level": "info",
//	  "seed_demo_user": true
//	}
//
// Invalid input panics; the CLI treats configuration errors as fatal.
package config
