package config

import (
	"runtime"
	"time"
)

const (
	DefaultFailOn       = FailOnInvalid
	DefaultLanguage     = "en"
	DefaultOutputFormat = "text"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultWatchPattern = "*"
	DefaultDebounce     = 200 * time.Millisecond
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.FailOn == "" {
		cfg.FailOn = DefaultFailOn
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Watch.Pattern == "" {
		cfg.Watch.Pattern = DefaultWatchPattern
	}
	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
}
