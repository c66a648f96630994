package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel=%q, want warn", cfg.LogLevel)
	}
	if cfg.RequestTimeout() != 0 {
		t.Fatalf("RequestTimeout()=%v, want 0 (library default applies)", cfg.RequestTimeout())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "proxy: http://127.0.0.1:8080\nrequest_timeout: 20\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Proxy != "http://127.0.0.1:8080" {
		t.Fatalf("Proxy=%q", cfg.Proxy)
	}
	if cfg.RequestTimeout() != 20*time.Second {
		t.Fatalf("RequestTimeout()=%v, want 20s", cfg.RequestTimeout())
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel=%q, want debug", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STREAMRESOLVE_PROXY", "http://proxy.internal:3128")
	t.Setenv("STREAMRESOLVE_LOG_LEVEL", "info")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Proxy != "http://proxy.internal:3128" {
		t.Fatalf("Proxy=%q, want env override", cfg.Proxy)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel=%q, want info", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}
