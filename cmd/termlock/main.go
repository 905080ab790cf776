package main

import (
	"context"
	"fmt"
	"os"

	"github.com/avolkov/termlock/internal/buildinfo"
	"github.com/avolkov/termlock/internal/cli"
	"github.com/avolkov/termlock/internal/config"
	"github.com/avolkov/termlock/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termlock: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "termlock: %v\n", err)
		os.Exit(1)
	}

}
