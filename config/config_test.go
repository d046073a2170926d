package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"wayfare/config"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	settings, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if settings.Server.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", settings.Server.Port)
	}
	if settings.SessionTTL() != 24*time.Hour {
		t.Fatalf("expected default session TTL of 24h, got %s", settings.SessionTTL())
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server":{"host":"127.0.0.1","port":8080},"database":{"path":"/tmp/test.db"},"sessions":{"ttlHours":2}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	settings, err := config.Load(path)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if settings.Addr() != "127.0.0.1:8080" {
		t.Fatalf("expected addr 127.0.0.1:8080, got %q", settings.Addr())
	}
	if settings.Database.Path != "/tmp/test.db" {
		t.Fatalf("unexpected database path %q", settings.Database.Path)
	}
	if settings.SessionTTL() != 2*time.Hour {
		t.Fatalf("expected 2h TTL, got %s", settings.SessionTTL())
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}
