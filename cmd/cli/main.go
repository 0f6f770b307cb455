package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/lifecalc/internal/buildinfo"
	"github.com/dmitrijs2005/lifecalc/internal/cli"
	"github.com/dmitrijs2005/lifecalc/internal/config"
	"github.com/dmitrijs2005/lifecalc/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
