package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestVersionCommandExists(t *testing.T) {
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
}

func TestVersionOutput(t *testing.T) {
	orig := Version
	Version = "0.1.0-test"
	defer func() { Version = orig }()

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)
	versionCmd.Run(versionCmd, nil)

	out := buf.String()
	if !strings.Contains(out, "isoskema 0.1.0-test") {
		t.Errorf("output lacks version: %q", out)
	}
	if !strings.Contains(out, runtime.Version()) {
		t.Errorf("output lacks Go version: %q", out)
	}
}
