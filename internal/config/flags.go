package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/lifecalc/internal/flagx"
)

// parseFlags populates cfg from the command-line flags listed in the package
// documentation. Only those flags are looked at; see flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-f", "-s", "-t", "-l"}, "-demo")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for the database file")
	fs.StringVar(&cfg.DatabaseFile, "f", cfg.DatabaseFile, "database file name")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key for session tokens")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.SeedDemoUser, "demo", cfg.SeedDemoUser, "create the demo user on an empty database")
	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Hours()), "session lifetime (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// keep sub-hour durations from JSON unless -t is given
	ttlSet := false
	fs.Visit(func(f *flag.Flag) { ttlSet = ttlSet || f.Name == "t" })
	if !ttlSet {
		return
	}
	if *sessionTTL <= 0 {
		panic(fmt.Sprintf("session lifetime must be positive, got %d hours", *sessionTTL))
	}

	cfg.SessionTTL = time.Duration(*sessionTTL) * time.Hour
}
