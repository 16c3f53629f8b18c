// Package batch validates many message files concurrently and collects one
// result per file, in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	iso "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/internal/config"
	"github.com/reoring/isoskema/internal/metrics"
	"github.com/reoring/isoskema/registry"
)

// Status of one file.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

// Result is the outcome of one file. Exactly one of the issue fields or
// Error is set unless the message is valid.
type Result struct {
	File     string        `json:"file" yaml:"file"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	Status   string        `json:"status" yaml:"status"`
	Code     int           `json:"code,omitempty" yaml:"code,omitempty"`
	CodeName string        `json:"code_name,omitempty" yaml:"code_name,omitempty"`
	Path     string        `json:"path,omitempty" yaml:"path,omitempty"`
	Detail   string        `json:"detail,omitempty" yaml:"detail,omitempty"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Report is the outcome of one run.
type Report struct {
	RunID    string    `json:"run_id" yaml:"run_id"`
	Started  time.Time `json:"started" yaml:"started"`
	Finished time.Time `json:"finished" yaml:"finished"`
	Results  []Result  `json:"results" yaml:"results"`
}

// Counts returns the number of valid, invalid and unreadable files.
func (r *Report) Counts() (valid, invalid, failed int) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusValid:
			valid++
		case StatusInvalid:
			invalid++
		default:
			failed++
		}
	}
	return valid, invalid, failed
}

// Runner validates files against a registry.
type Runner struct {
	Registry *registry.Registry
	// Workers bounds concurrency; values below 1 mean one worker.
	Workers int
	// MessageID forces every file to be decoded as this message instead of
	// detecting it.
	MessageID string
	Metrics   *metrics.Collector
	Logger    zerolog.Logger
}

// Run validates files. Per-file problems are recorded in the report; the
// returned error is non-nil only when ctx ends before every file is done.
func (r *Runner) Run(ctx context.Context, files []string) (*Report, error) {
	rep := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now().UTC(),
		Results: make([]Result, len(files)),
	}
	log := r.Logger.With().Str("run_id", rep.RunID).Logger()
	log.Debug().Int("files", len(files)).Int("workers", r.workers()).Msg("batch started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i, f := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep.Results[i] = r.ValidateFile(f)
			logResult(log, rep.Results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rep, err
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	rep.Finished = time.Now().UTC()
	if r.Metrics != nil {
		r.Metrics.MarkRun(rep.Finished)
	}
	valid, invalid, failed := rep.Counts()
	log.Info().Int("valid", valid).Int("invalid", invalid).Int("error", failed).Msg("batch finished")
	return rep, nil
}

// ValidateFile reads, decodes and validates one file.
func (r *Runner) ValidateFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{File: path, Status: StatusError, Error: err.Error()}
	}
	return r.ValidateBytes(path, data)
}

// ValidateBytes decodes and validates data, labelled name in the result.
func (r *Runner) ValidateBytes(name string, data []byte) Result {
	start := time.Now()
	res := Result{File: name}

	doc, entry, err := r.Registry.Decode(data, r.MessageID)
	res.Message = entry.ID
	if err == nil {
		err = iso.Validate(doc)
	}
	res.Duration = time.Since(start)
	if r.Metrics != nil {
		r.Metrics.Observe(res.Message, err, res.Duration)
	}

	var iss *iso.Issue
	switch {
	case err == nil:
		res.Status = StatusValid
	case errors.As(err, &iss):
		res.Status = StatusInvalid
		res.Code = int(iss.Code)
		res.CodeName = iss.Code.String()
		res.Path = iss.Path
		res.Detail = iss.Message
	default:
		res.Status = StatusError
		res.Error = err.Error()
	}
	return res
}

func (r *Runner) workers() int {
	if r.Workers < 1 {
		return 1
	}
	return r.Workers
}

func logResult(log zerolog.Logger, res Result) {
	switch res.Status {
	case StatusValid:
		log.Debug().Str("file", res.File).Str("message", res.Message).Msg("valid")
	case StatusInvalid:
		log.Warn().Str("file", res.File).Str("message", res.Message).
			Int("code", res.Code).Str("path", res.Path).Msg(res.Detail)
	default:
		log.Error().Str("file", res.File).Str("error", res.Error).Msg("unreadable message")
	}
}

// Failed reports whether rep should fail the run under the config.FailOn*
// policy failOn.
func Failed(rep *Report, failOn string) (bool, error) {
	_, invalid, failed := rep.Counts()
	switch failOn {
	case config.FailOnInvalid:
		return invalid+failed > 0, nil
	case config.FailOnError:
		return failed > 0, nil
	case config.FailOnNever:
		return false, nil
	default:
		return false, fmt.Errorf("unknown fail-on policy %q", failOn)
	}
}
