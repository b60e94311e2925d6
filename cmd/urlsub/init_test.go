package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitCmd tests configuration file generation.
func TestInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates a config file at the given path", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".urlsub")

		cmd := NewInitCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"-o", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-owned path
		if err != nil {
			t.Fatalf("expected config file to exist: %v", err)
		}
		for _, want := range []string{"endpoints:", "limit:", "timeout:", "BING_API_KEY"} {
			if !strings.Contains(string(data), want) {
				t.Errorf("expected template to contain %q", want)
			}
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".urlsub")
		if err := os.WriteFile(path, []byte("limit: 5\n"), 0600); err != nil {
			t.Fatalf("failed to seed config: %v", err)
		}

		cmd := NewInitCmd()
		cmd.SetArgs([]string{"-o", path})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for existing file without -f")
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".urlsub")
		if err := os.WriteFile(path, []byte("limit: 5\n"), 0600); err != nil {
			t.Fatalf("failed to seed config: %v", err)
		}

		cmd := NewInitCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"-o", path, "-f"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(path) //nolint:gosec // Test-owned path
		if err != nil {
			t.Fatalf("failed to read config: %v", err)
		}
		if !strings.Contains(string(data), "endpoints:") {
			t.Error("expected file to be replaced by the template")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "dir", ".urlsub")

		cmd := NewInitCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"-o", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected config file to exist: %v", err)
		}
	})
}
