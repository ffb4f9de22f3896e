package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DimaEnotoff/friendlyclp/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := config.Default()
	if *cfg != want {
		t.Errorf("got %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "shell:\n  prompt: \"$ \"\nlog:\n  level: debug\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Shell.Prompt != "$ " {
		t.Errorf("prompt %q", cfg.Shell.Prompt)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level %q", cfg.Log.Level)
	}
	// Untouched fields keep their defaults.
	if cfg.Shell.TranscriptLimit != config.Default().Shell.TranscriptLimit {
		t.Errorf("transcript limit %d", cfg.Shell.TranscriptLimit)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "shell: [\n"},
		{"bad log format", "log:\n  format: xml\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"bad transcript limit", "shell:\n  transcript_limit: 0\n"},
		{"bad cache minutes", "shell:\n  help_cache_minutes: -1\n"},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.content)
		if _, err := config.Load(path); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
