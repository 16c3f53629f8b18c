package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/reoring/isoskema/internal/batch"
	"github.com/reoring/isoskema/internal/metrics"
	"github.com/reoring/isoskema/internal/report"
	"github.com/reoring/isoskema/registry"
)

var validateFlags struct {
	format    string
	workers   int
	messageID string
	failOn    string
	pattern   string
}

var validateCmd = &cobra.Command{
	Use:   "validate [files or directories...]",
	Short: "Validate message files",
	Long: `Validate decodes every file, detects its message type from the XML namespace
or the JSON members (unless --message is given), validates it, and prints one
line per file. Directories are searched recursively for files matching
--pattern.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringVarP(&validateFlags.format, "format", "o", "", "report format: text, json, yaml")
	f.IntVarP(&validateFlags.workers, "workers", "w", 0, "files validated concurrently")
	f.StringVarP(&validateFlags.messageID, "message", "m", "", "decode every file as this message (for example camt.013.001.04)")
	f.StringVar(&validateFlags.failOn, "fail-on", "", "exit non-zero on: invalid, error, never")
	f.StringVar(&validateFlags.pattern, "pattern", "", "glob for files inside directories")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	if validateFlags.format != "" {
		cfg.Output.Format = validateFlags.format
	}
	if validateFlags.workers > 0 {
		cfg.Workers = validateFlags.workers
	}
	if validateFlags.failOn != "" {
		cfg.FailOn = validateFlags.failOn
	}
	pattern := cfg.Watch.Pattern
	if validateFlags.pattern != "" {
		pattern = validateFlags.pattern
	}

	files, err := expandArgs(args, pattern)
	if err != nil {
		return err
	}
	if validateFlags.messageID != "" {
		if _, ok := registry.Default().Lookup(validateFlags.messageID); !ok {
			return fmt.Errorf("unknown message %q", validateFlags.messageID)
		}
	}

	collector := metrics.NewCollector(nil)
	runner := &batch.Runner{
		Registry:  registry.Default(),
		Workers:   cfg.Workers,
		MessageID: validateFlags.messageID,
		Metrics:   collector,
		Logger:    logger,
	}
	rep, err := runner.Run(cmd.Context(), files)
	if err != nil {
		return err
	}
	if err := report.Write(cmd.OutOrStdout(), cfg.Output.Format, rep); err != nil {
		return err
	}
	if cfg.Metrics.Textfile != "" {
		if err := collector.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Error().Err(err).Str("path", cfg.Metrics.Textfile).Msg("metrics not written")
		}
	}

	failed, err := batch.Failed(rep, cfg.FailOn)
	if err != nil {
		return err
	}
	if failed {
		return errFailed
	}
	return nil
}

// expandArgs turns file and directory arguments into a sorted, de-duplicated
// file list. Directories contribute regular files whose base name matches
// pattern.
func expandArgs(args []string, pattern string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil {
			// Unreadable paths are reported per file by the runner.
			add(a)
			continue
		}
		if !info.IsDir() {
			add(a)
			continue
		}
		var found []string
		err = filepath.WalkDir(a, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				if ok, _ := filepath.Match(pattern, d.Name()); ok {
					found = append(found, p)
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", a, err)
		}
		sort.Strings(found)
		for _, p := range found {
			add(p)
		}
	}
	return files, nil
}
