package config

import "github.com/kelseyhightower/envconfig"

// parseEnv overlays Config with TERMLOCK_-prefixed environment variables,
// e.g. TERMLOCK_APP_DIR, TERMLOCK_SESSION_TTL=10m. Only variables that are
// actually set override the current values.
func parseEnv(cfg *Config) {
	if err := envconfig.Process("termlock", cfg); err != nil {
		panic(err)
	}
}
