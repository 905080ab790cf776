package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the termlock application and the
// setup tool.
//
// Fields:
//   - AppDir: root directory holding the database, session token, sandbox
//     and installed binary.
//   - DBFile: database file name, resolved relative to AppDir.
//   - ProfileFile: shell profile that receives the alias block.
//   - PkgManager: package manager command wrapped by the menu ("pkg" on
//     Termux, "apt"/"apk" elsewhere).
//   - SessionTTL: how long a session token stays resumable.
//   - CommandTimeout: upper bound for a single menu action's OS command.
//   - AuditViewLimit: how many audit entries "view logs" shows.
//   - LogLevel: diagnostic log level (debug|info|warn|error).
type Config struct {
	AppDir         string        `envconfig:"APP_DIR"`
	DBFile         string        `envconfig:"DB_FILE"`
	ProfileFile    string        `envconfig:"PROFILE_FILE"`
	PkgManager     string        `envconfig:"PKG_MANAGER"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL"`
	CommandTimeout time.Duration `envconfig:"COMMAND_TIMEOUT"`
	AuditViewLimit int           `envconfig:"AUDIT_VIEW_LIMIT"`
	LogLevel       string        `envconfig:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.AppDir = filepath.Join(home, ".termlock")
	c.DBFile = "termlock.db"
	c.ProfileFile = filepath.Join(home, ".bashrc")
	c.PkgManager = "pkg"
	c.SessionTTL = 5 * time.Minute
	c.CommandTimeout = 60 * time.Second
	c.AuditViewLimit = 20
	c.LogLevel = "info"
}

// DBPath returns the absolute path of the database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.AppDir, c.DBFile)
}

// BinDir returns the directory the application binary is installed into.
func (c *Config) BinDir() string {
	return filepath.Join(c.AppDir, "bin")
}

// SandboxDir returns the directory file operations are confined to.
func (c *Config) SandboxDir() string {
	return filepath.Join(c.AppDir, "files")
}

// SessionTokenPath returns the path of the persisted session token.
func (c *Config) SessionTokenPath() string {
	return filepath.Join(c.AppDir, "session.token")
}

// SecretPath returns the path of the per-install token signing secret.
func (c *Config) SecretPath() string {
	return filepath.Join(c.AppDir, "secret.key")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
