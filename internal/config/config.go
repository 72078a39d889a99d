package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Settings holds the environment-driven client configuration. Library users
// pass explicit values to pve.New; the CLI reads these instead.
type Settings struct {
	Host         string        `envconfig:"HOST"`
	Port         int           `envconfig:"PORT"          default:"8006"`
	TokenID      string        `envconfig:"TOKEN_ID"`
	TokenSecret  string        `envconfig:"TOKEN_SECRET"`
	ResponseType string        `envconfig:"RESPONSE_TYPE" default:"array"`
	InsecureTLS  bool          `envconfig:"INSECURE_TLS"  default:"false"`
	Timeout      time.Duration `envconfig:"TIMEOUT"       default:"30s"`
	LogLevel     string        `envconfig:"LOG_LEVEL"     default:"info"`
}

// Load reads Settings from PVE_* environment variables.
func Load() (Settings, error) {
	var s Settings
	return s, envconfig.Process("PVE", &s)
}

// Level parses the configured log level, defaulting to info.
func (s Settings) Level() zerolog.Level {
	switch s.LogLevel {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
