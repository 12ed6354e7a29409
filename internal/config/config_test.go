package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Theme.Default != "light" {
		t.Errorf("expected default theme light, got %q", cfg.Theme.Default)
	}
	if cfg.Contact.Outbox != OutboxLog {
		t.Errorf("expected default outbox %q, got %q", OutboxLog, cfg.Contact.Outbox)
	}
	if cfg.Site.Title != "Hanssen Portfolio" {
		t.Errorf("unexpected default title %q", cfg.Site.Title)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.hanssen.yml")

	original := DefaultConfig()
	original.Site.Name = "studio"
	original.Server.Port = 9000
	original.Theme.Default = "dark"
	original.Contact.Outbox = OutboxSQLite
	original.Session.IdleTimeout = "2h"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Site.Name != original.Site.Name {
		t.Errorf("site.name: got %q, want %q", loaded.Site.Name, original.Site.Name)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("server.port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Theme.Default != original.Theme.Default {
		t.Errorf("theme.default: got %q, want %q", loaded.Theme.Default, original.Theme.Default)
	}
	if loaded.Contact.Outbox != original.Contact.Outbox {
		t.Errorf("contact.outbox: got %q, want %q", loaded.Contact.Outbox, original.Contact.Outbox)
	}
	if loaded.Durations().IdleTimeout != 2*time.Hour {
		t.Errorf("session.idle_timeout: got %v", loaded.Durations().IdleTimeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("server.port: got %d, want 7000", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != "60s" {
		t.Errorf("server.request_timeout default lost: %q", cfg.Server.RequestTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("HANSSEN_SERVER_PORT", "9090")
	t.Setenv("HANSSEN_THEME_DEFAULT", "dark")
	t.Setenv("HANSSEN_SERVER_ALLOW_ALL_ORIGINS", "true")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("env override failed: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Theme.Default != "dark" {
		t.Errorf("env override failed: got %q, want dark", loaded.Theme.Default)
	}
	if !loaded.Server.AllowAllOrigins {
		t.Error("env override failed for server.allow_all_origins")
	}
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"HANSSEN_SERVER_PORT":             "server.port",
		"HANSSEN_CONTACT_DB_PATH":         "contact.db_path",
		"HANSSEN_TELEMETRY_OTLP_ENDPOINT": "telemetry.otlp_endpoint",
		"HANSSEN_SESSION_IDLE_TIMEOUT":    "session.idle_timeout",
		"HANSSEN_UNKNOWN":                 "unknown",
	}
	for in, want := range cases {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	cases := map[string]func(*Config){
		"port":       func(c *Config) { c.Server.Port = 70000 },
		"theme":      func(c *Config) { c.Theme.Default = "sepia" },
		"outbox":     func(c *Config) { c.Contact.Outbox = "smtp" },
		"db path":    func(c *Config) { c.Contact.Outbox = OutboxSQLite; c.Contact.DBPath = "" },
		"duration":   func(c *Config) { c.Session.IdleTimeout = "soon" },
		"log level":  func(c *Config) { c.Log.Level = "loud" },
		"log format": func(c *Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestValidatePort(t *testing.T) {
	if err := validatePort("8080"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "abc", "0", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}
