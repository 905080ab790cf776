package config

import (
	"encoding/json"
	"os"

	"github.com/avolkov/termlock/internal/flagx"
	"github.com/avolkov/termlock/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5m"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	AppDir         *string         `json:"app_dir"`
	DBFile         *string         `json:"db_file"`
	ProfileFile    *string         `json:"profile_file"`
	PkgManager     *string         `json:"pkg_manager"`
	SessionTTL     *timex.Duration `json:"session_ttl"`
	CommandTimeout *timex.Duration `json:"command_timeout"`
	AuditViewLimit *int            `json:"audit_view_limit"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags (flagx.JsonConfigFlags);
// when no path is given, nothing is loaded. Only fields present in the file
// override the current Config. Read or unmarshal errors panic; the caller
// decides whether to recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AppDir != nil {
		cfg.AppDir = *jc.AppDir
	}
	if jc.DBFile != nil {
		cfg.DBFile = *jc.DBFile
	}
	if jc.ProfileFile != nil {
		cfg.ProfileFile = *jc.ProfileFile
	}
	if jc.PkgManager != nil {
		cfg.PkgManager = *jc.PkgManager
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.CommandTimeout != nil {
		cfg.CommandTimeout = jc.CommandTimeout.Duration
	}
	if jc.AuditViewLimit != nil {
		cfg.AuditViewLimit = *jc.AuditViewLimit
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
