package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avolkov/termlock/internal/buildinfo"
	"github.com/avolkov/termlock/internal/config"
	"github.com/avolkov/termlock/internal/flagx"
	"github.com/avolkov/termlock/internal/installer"
	"github.com/avolkov/termlock/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	args := flagx.FilterArgs(os.Args[1:], []string{"-src"})
	fs := flag.NewFlagSet("termlock-setup", flag.ExitOnError)
	src := fs.String("src", "", "path of the termlock binary to stage (defaults to a sibling of this executable)")
	fs.Parse(args)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewDefault(cfg.LogLevel)

	inst := installer.New(cfg, log)
	inst.Source = *src

	if err := inst.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "termlock-setup: %v\n", err)
		os.Exit(1)
	}
}
