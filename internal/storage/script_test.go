package storage

import (
	"os"
	"path/filepath"
	"testing"

	"ftgen/internal/config"
)

func newTestStorage(t *testing.T) *ScriptStorage {
	t.Helper()
	cfg := config.New()
	cfg.OutputFile = filepath.Join(t.TempDir(), config.DefaultOutputFile)
	return NewScriptStorage(cfg)
}

func readScript(t *testing.T, s *ScriptStorage) string {
	t.Helper()
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("failed to read script: %v", err)
	}
	return string(data)
}

func TestScriptStorage_Create(t *testing.T) {
	t.Run("creates empty file", func(t *testing.T) {
		s := newTestStorage(t)
		if err := s.Create(false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := readScript(t, s); got != "" {
			t.Errorf("expected empty script, got %q", got)
		}
	})

	t.Run("keeps existing content", func(t *testing.T) {
		s := newTestStorage(t)
		if err := os.WriteFile(s.Path(), []byte("echo before\n"), 0644); err != nil {
			t.Fatalf("failed to seed script: %v", err)
		}
		if err := s.Create(false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := readScript(t, s); got != "echo before\n" {
			t.Errorf("expected content to be kept, got %q", got)
		}
	})

	t.Run("fresh truncates", func(t *testing.T) {
		s := newTestStorage(t)
		if err := os.WriteFile(s.Path(), []byte("echo before\n"), 0644); err != nil {
			t.Fatalf("failed to seed script: %v", err)
		}
		if err := s.Create(true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := readScript(t, s); got != "" {
			t.Errorf("expected truncated script, got %q", got)
		}
	})

	t.Run("unwritable location", func(t *testing.T) {
		cfg := config.New()
		cfg.OutputFile = filepath.Join(t.TempDir(), "missing", "dir", "run.sh")
		if err := NewScriptStorage(cfg).Create(false); err == nil {
			t.Error("expected error for missing parent directory")
		}
	})
}

func TestScriptStorage_Append(t *testing.T) {
	s := newTestStorage(t)
	if err := os.WriteFile(s.Path(), []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatalf("failed to seed script: %v", err)
	}

	for _, line := range []string{"echo one", "echo two"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	expected := "#!/bin/sh\necho one\necho two\n"
	if got := readScript(t, s); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestScriptStorage_Append_CreatesFile(t *testing.T) {
	s := newTestStorage(t)
	if err := s.Append("echo one"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readScript(t, s); got != "echo one\n" {
		t.Errorf("expected single line, got %q", got)
	}
}
