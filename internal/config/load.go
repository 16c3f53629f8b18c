package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration at path. The file format follows the
// extension: .toml is TOML, anything else YAML. An empty path yields the
// defaults.
//
// The loading sequence is:
// 1. Parse the file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate the final configuration
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := parse(path, data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}
	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func parse(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnvOverrides applies ISOSKEMA_* variables. Unparseable numeric values
// are ignored.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("ISOSKEMA_WORKERS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Workers = i
		}
	}
	if val := os.Getenv("ISOSKEMA_FAIL_ON"); val != "" {
		cfg.FailOn = val
	}
	if val := os.Getenv("ISOSKEMA_LANGUAGE"); val != "" {
		cfg.Language = val
	}
	if val := os.Getenv("ISOSKEMA_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv("ISOSKEMA_WATCH_DIR"); val != "" {
		cfg.Watch.Dir = val
	}
	if val := os.Getenv("ISOSKEMA_WATCH_PATTERN"); val != "" {
		cfg.Watch.Pattern = val
	}
	if val := os.Getenv("ISOSKEMA_WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.Debounce = d
		}
	}
	if val := os.Getenv("ISOSKEMA_METRICS_TEXTFILE"); val != "" {
		cfg.Metrics.Textfile = val
	}
}
