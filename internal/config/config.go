package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "HANSSEN_"

// sections are the top-level keys; the first "_" after one of them in an
// env var name separates section from field.
var sections = []string{"site", "server", "session", "theme", "content", "contact", "telemetry", "log"}

// envKey maps HANSSEN_SERVER_PORT to server.port and
// HANSSEN_SERVER_ALLOW_ALL_ORIGINS to server.allow_all_origins.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, sec := range sections {
		if strings.HasPrefix(key, sec+"_") {
			return sec + "." + strings.TrimPrefix(key, sec+"_")
		}
	}
	return key
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HANSSEN_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validOutboxes = map[OutboxType]bool{
	OutboxLog:    true,
	OutboxSQLite: true,
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	for name, v := range map[string]string{
		"server.read_header_timeout": c.Server.ReadHeaderTimeout,
		"server.request_timeout":     c.Server.RequestTimeout,
		"session.idle_timeout":       c.Session.IdleTimeout,
		"session.sweep_interval":     c.Session.SweepInterval,
	} {
		if _, err := parseDuration(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	if c.Theme.Default != "light" && c.Theme.Default != "dark" {
		return fmt.Errorf("invalid theme.default %q: must be light or dark", c.Theme.Default)
	}
	if !validOutboxes[c.Contact.Outbox] {
		return fmt.Errorf("invalid contact.outbox %q: must be one of log, sqlite", c.Contact.Outbox)
	}
	if c.Contact.Outbox == OutboxSQLite && c.Contact.DBPath == "" {
		return fmt.Errorf("contact.db_path is required for the sqlite outbox")
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("invalid log.format %q: must be json or console", c.Log.Format)
	}
	return nil
}

// parseDuration treats an empty string as zero.
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

// Durations holds the parsed duration settings.
type Durations struct {
	ReadHeaderTimeout time.Duration
	RequestTimeout    time.Duration
	IdleTimeout       time.Duration
	SweepInterval     time.Duration
}

// Durations parses the duration strings. Call Validate first.
func (c *Config) Durations() Durations {
	var d Durations
	d.ReadHeaderTimeout, _ = parseDuration(c.Server.ReadHeaderTimeout)
	d.RequestTimeout, _ = parseDuration(c.Server.RequestTimeout)
	d.IdleTimeout, _ = parseDuration(c.Session.IdleTimeout)
	d.SweepInterval, _ = parseDuration(c.Session.SweepInterval)
	return d
}
