package config

import (
	"flag"
	"os"
	"time"

	"github.com/avolkov/termlock/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   application directory
//	-p string   shell profile file
//	-m string   package manager command
//	-t int      session TTL in seconds
//	-l string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-m", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AppDir, "d", cfg.AppDir, "application directory")
	fs.StringVar(&cfg.ProfileFile, "p", cfg.ProfileFile, "shell profile file")
	fs.StringVar(&cfg.PkgManager, "m", cfg.PkgManager, "package manager command")
	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Seconds()), "session TTL (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*sessionTTL) * time.Second
}
