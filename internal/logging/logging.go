// Package logging configures the process-wide zerolog logger used by the
// command line tool, the batch runner and the inbox watcher. The validation
// engine itself never logs.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel   = "ISOSKEMA_LOG_LEVEL"
	EnvLogFormat  = "ISOSKEMA_LOG_FORMAT"
	EnvLogNoColor = "ISOSKEMA_LOG_NOCOLOR"
)

// Options selects the logger output. Zero values mean info level, console
// output with colors.
type Options struct {
	Level   string
	Format  string // "console" or "json"
	NoColor bool
	Out     io.Writer
}

// New builds a logger from opts after applying the ISOSKEMA_LOG_* overrides,
// installs it as the zerolog global logger and returns it.
func New(app string, opts Options) zerolog.Logger {
	applyEnvOverrides(&opts)
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: opts.NoColor}
	}
	lvl, ok := ParseLevel(opts.Level)
	if !ok {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(out).Level(lvl).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// Nop returns a disabled logger, for library callers and tests that pass no
// logger.
func Nop() zerolog.Logger { return zerolog.Nop() }

func applyEnvOverrides(opts *Options) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		opts.Level = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogFormat))); v == "json" || v == "console" {
		opts.Format = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		opts.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level. The empty string is not a
// level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
