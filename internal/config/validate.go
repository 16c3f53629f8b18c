package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError lists every invalid setting.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks cfg after defaults have been applied.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}
	var problems []string
	add := func(format string, args ...any) { problems = append(problems, fmt.Sprintf(format, args...)) }

	if cfg.Workers < 1 {
		add("workers must be at least 1, got %d", cfg.Workers)
	}
	switch cfg.FailOn {
	case FailOnInvalid, FailOnError, FailOnNever:
	default:
		add("fail_on must be one of invalid, error, never; got %q", cfg.FailOn)
	}
	switch cfg.Language {
	case "en", "ja":
	default:
		add("language must be en or ja, got %q", cfg.Language)
	}
	switch cfg.Output.Format {
	case "text", "json", "yaml":
	default:
		add("output.format must be text, json or yaml; got %q", cfg.Output.Format)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		add("log.format must be console or json, got %q", cfg.Log.Format)
	}
	if _, err := filepath.Match(cfg.Watch.Pattern, ""); err != nil {
		add("watch.pattern %q: %v", cfg.Watch.Pattern, err)
	}
	if cfg.Watch.Debounce < 0 {
		add("watch.debounce must not be negative")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
