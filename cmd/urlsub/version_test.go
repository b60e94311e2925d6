package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestVersionCmd verifies the version command output.
func TestVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "urlsub version") {
		t.Errorf("expected version line, got %q", out)
	}
	if !strings.Contains(out, "commit:") || !strings.Contains(out, "built:") {
		t.Errorf("expected commit and build date lines, got %q", out)
	}
}

// TestGetVersion verifies the version fallback chain never returns empty.
func TestGetVersion(t *testing.T) {
	t.Parallel()

	if got := getVersion(); got == "" {
		t.Error("expected non-empty version string")
	}
	if got := getCommit(); got == "" {
		t.Error("expected non-empty commit string")
	}
	if got := getDate(); got == "" {
		t.Error("expected non-empty date string")
	}
}
