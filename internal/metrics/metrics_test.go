package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	iso "github.com/reoring/isoskema"
)

func TestCollector_Observe(t *testing.T) {
	c := NewCollector(nil)

	c.Observe("admi.004.001.02", nil, time.Millisecond)
	c.Observe("admi.004.001.02", iso.IssueAt(iso.Root(), iso.CodeTooLong, nil), time.Millisecond)
	c.Observe("", errors.New("decode xml: EOF"), time.Millisecond)

	if got := testutil.ToFloat64(c.messages.WithLabelValues("admi.004.001.02", OutcomeValid)); got != 1 {
		t.Errorf("valid: got %v", got)
	}
	if got := testutil.ToFloat64(c.messages.WithLabelValues("admi.004.001.02", OutcomeInvalid)); got != 1 {
		t.Errorf("invalid: got %v", got)
	}
	if got := testutil.ToFloat64(c.messages.WithLabelValues("unknown", OutcomeError)); got != 1 {
		t.Errorf("error: got %v", got)
	}
	if got := testutil.ToFloat64(c.issues.WithLabelValues("1002")); got != 1 {
		t.Errorf("issues: got %v", got)
	}
	if n := testutil.CollectAndCount(c.duration); n != 2 {
		t.Errorf("histogram series: got %d", n)
	}
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := NewCollector(nil)
	c.Observe("camt.013.001.04", nil, time.Millisecond)
	c.MarkRun(time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "isoskema.prom")
	if err := c.WriteTextfile(path); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	if !strings.Contains(out, `isoskema_messages_total{message="camt.013.001.04",outcome="valid"} 1`) {
		t.Fatalf("missing counter:\n%s", out)
	}
	if !strings.Contains(out, "isoskema_last_run_timestamp_seconds 1.7e+09") {
		t.Fatalf("missing gauge:\n%s", out)
	}
}
