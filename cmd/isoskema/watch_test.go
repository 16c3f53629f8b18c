package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reoring/isoskema/internal/batch"
	"github.com/reoring/isoskema/internal/metrics"
	"github.com/reoring/isoskema/registry"
)

func TestResultSink_ConcurrentHandlesWriteWholeLines(t *testing.T) {
	dir := t.TempDir()
	const n = 16
	var paths []string
	for i := 0; i < n; i++ {
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("event-%02d.xml", i), validEvent))
	}
	textfile := filepath.Join(dir, "isoskema.prom")

	collector := metrics.NewCollector(nil)
	var out bytes.Buffer
	sink := &resultSink{
		runner:    &batch.Runner{Registry: registry.Default(), Metrics: collector, Logger: zerolog.Nop()},
		collector: collector,
		textfile:  textfile,
		out:       &out,
		logger:    zerolog.Nop(),
	}

	var wg sync.WaitGroup
	for _, p := range paths {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			sink.handle(p)
		}(p)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), n, out.String())
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "OK") || !strings.Contains(l, "admi.004.001.02") {
			t.Errorf("malformed line %q", l)
		}
	}
	if _, err := os.Stat(textfile); err != nil {
		t.Errorf("metrics textfile: %v", err)
	}
}
