// Package report renders batch reports for humans (text) and machines (JSON,
// YAML).
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/isoskema/internal/batch"
)

// Write renders rep to w in format ("text", "json" or "yaml").
func Write(w io.Writer, format string, rep *batch.Report) error {
	switch format {
	case "text", "":
		return writeText(w, rep)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeText(w io.Writer, rep *batch.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range rep.Results {
		writeLine(tw, r)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	valid, invalid, failed := rep.Counts()
	_, err := fmt.Fprintf(w, "%d valid, %d invalid, %d unreadable (run %s)\n", valid, invalid, failed, rep.RunID)
	return err
}

// WriteResult renders one result as a text line, the way watch mode streams
// them.
func WriteResult(w io.Writer, r batch.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeLine(tw, r)
	return tw.Flush()
}

func writeLine(w io.Writer, r batch.Result) {
	switch r.Status {
	case batch.StatusValid:
		fmt.Fprintf(w, "OK\t%s\t%s\n", r.File, r.Message)
	case batch.StatusInvalid:
		fmt.Fprintf(w, "FAIL\t%s\t%s\t%d %s at %s: %s\n", r.File, r.Message, r.Code, r.CodeName, r.Path, r.Detail)
	default:
		fmt.Fprintf(w, "ERROR\t%s\t%s\t%s\n", r.File, r.Message, r.Error)
	}
}
