package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/isoskema/i18n"
	"github.com/reoring/isoskema/internal/config"
	"github.com/reoring/isoskema/internal/logging"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
	language string
)

// errFailed signals a run whose outcome violates the fail-on policy; the
// report has already been printed.
var errFailed = errors.New("validation failed")

var rootCmd = &cobra.Command{
	Use:   "isoskema",
	Short: "Validate ISO 20022 and FedNow messages",
	Long: `isoskema decodes ISO 20022 XML documents and FedNow JSON bodies into typed
records and checks them against the schema constraints: lengths, patterns,
numeric bounds, code lists, cardinality and choice exclusivity.

Validation stops at the first violation and reports its code and JSON Pointer.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "issue message language (en, ja)")
}

// setup loads the configuration, applies the global flags and configures
// logging and messages.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if language != "" {
		cfg.Language = language
	}
	if err := config.Validate(cfg); err != nil {
		return nil, zerolog.Nop(), err
	}
	i18n.SetLanguage(cfg.Language)
	logger := logging.New("isoskema", logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		NoColor: cfg.Log.NoColor,
		Out:     cmd.ErrOrStderr(),
	})
	return cfg, logger, nil
}
