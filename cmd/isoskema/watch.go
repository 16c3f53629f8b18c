package main

import (
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/isoskema/internal/batch"
	"github.com/reoring/isoskema/internal/metrics"
	"github.com/reoring/isoskema/internal/report"
	"github.com/reoring/isoskema/internal/watch"
	"github.com/reoring/isoskema/registry"
)

var watchFlags struct {
	pattern   string
	messageID string
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Validate messages as they arrive in a directory",
	Long: `Watch validates every file created or written in the inbox directory and
prints one result line per file until interrupted. The directory defaults to
watch.dir from the configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchFlags.pattern, "pattern", "", "glob for file names to validate")
	watchCmd.Flags().StringVarP(&watchFlags.messageID, "message", "m", "", "decode every file as this message")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	dir := cfg.Watch.Dir
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		return fmt.Errorf("no inbox directory: pass one or set watch.dir")
	}
	if watchFlags.pattern != "" {
		cfg.Watch.Pattern = watchFlags.pattern
	}

	collector := metrics.NewCollector(nil)
	runner := &batch.Runner{
		Registry:  registry.Default(),
		MessageID: watchFlags.messageID,
		Metrics:   collector,
		Logger:    logger,
	}
	sink := &resultSink{
		runner:    runner,
		collector: collector,
		textfile:  cfg.Metrics.Textfile,
		out:       cmd.OutOrStdout(),
		logger:    logger,
	}
	w := &watch.Watcher{
		Dir:      dir,
		Pattern:  cfg.Watch.Pattern,
		Debounce: cfg.Watch.Debounce,
		Logger:   logger,
		Handle:   sink.handle,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return w.Run(ctx)
}

// resultSink validates one file per call and writes its result line and the
// metrics textfile. The watcher calls handle from concurrent timer goroutines.
type resultSink struct {
	runner    *batch.Runner
	collector *metrics.Collector
	textfile  string
	out       io.Writer
	logger    zerolog.Logger

	mu sync.Mutex
}

func (s *resultSink) handle(path string) {
	res := s.runner.ValidateFile(path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := report.WriteResult(s.out, res); err != nil {
		s.logger.Error().Err(err).Msg("report not written")
	}
	if s.textfile != "" {
		if err := s.collector.WriteTextfile(s.textfile); err != nil {
			s.logger.Error().Err(err).Msg("metrics not written")
		}
	}
}
