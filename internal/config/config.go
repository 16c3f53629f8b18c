// Package config loads the isoskema tool configuration from a YAML or TOML
// file, applies defaults and ISOSKEMA_* environment overrides, and validates
// the result.
package config

import "time"

// Config is the complete tool configuration.
type Config struct {
	// Workers bounds the number of files validated concurrently.
	Workers int `yaml:"workers" toml:"workers"`
	// FailOn decides the exit status of a batch: "invalid" fails when any
	// message is invalid or unreadable, "error" only when a file cannot be
	// read or decoded, "never" always succeeds.
	FailOn string `yaml:"fail_on" toml:"fail_on"`
	// Language selects the issue message dictionary ("en" or "ja").
	Language string `yaml:"language" toml:"language"`

	Output  OutputConfig  `yaml:"output" toml:"output"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Watch   WatchConfig   `yaml:"watch" toml:"watch"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

type OutputConfig struct {
	// Format is "text", "json" or "yaml".
	Format string `yaml:"format" toml:"format"`
}

type LogConfig struct {
	Level   string `yaml:"level" toml:"level"`
	Format  string `yaml:"format" toml:"format"`
	NoColor bool   `yaml:"no_color" toml:"no_color"`
}

type WatchConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
	// Pattern is a filepath.Match glob applied to base names.
	Pattern string `yaml:"pattern" toml:"pattern"`
	// Debounce delays validation after the last write event of a file.
	Debounce time.Duration `yaml:"debounce" toml:"debounce"`
}

type MetricsConfig struct {
	// Textfile, when set, receives the metrics in node-exporter textfile
	// format after every batch.
	Textfile string `yaml:"textfile" toml:"textfile"`
}

// FailOn values.
const (
	FailOnInvalid = "invalid"
	FailOnError   = "error"
	FailOnNever   = "never"
)
