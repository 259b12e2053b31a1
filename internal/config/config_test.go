package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SCRIBE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.API.BaseURL != "http://localhost:8080" {
		t.Errorf("base url default: got %q", c.API.BaseURL)
	}
	if c.Search.DebounceMS != 1000 {
		t.Errorf("debounce default: got %d", c.Search.DebounceMS)
	}
	if c.Log.Level != "info" {
		t.Errorf("log level default: got %q", c.Log.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[api]
base_url = "https://backend.example.com"

[search]
debounce_ms = 250

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCRIBE_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.API.BaseURL != "https://backend.example.com" {
		t.Errorf("base url: got %q", c.API.BaseURL)
	}
	if c.Search.DebounceMS != 250 {
		t.Errorf("debounce: got %d", c.Search.DebounceMS)
	}
	if c.Log.Level != "debug" {
		t.Errorf("log level: got %q", c.Log.Level)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SCRIBE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("SCRIBE_API_BASE_URL", "http://env-host:9000")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.API.BaseURL != "http://env-host:9000" {
		t.Errorf("env override ignored: got %q", c.API.BaseURL)
	}
}

func TestRejectsBadDebounce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[search]\ndebounce_ms = -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCRIBE_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("negative debounce must be rejected")
	}
}
