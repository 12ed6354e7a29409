package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:        "hanssen",
			Title:       "Hanssen Portfolio",
			Description: "Portfolio showcasing creative work and services",
		},
		Server: ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: "10s",
			RequestTimeout:    "60s",
		},
		Session: SessionConfig{
			IdleTimeout:   "30m",
			SweepInterval: "1m",
		},
		Theme: ThemeConfig{
			Default: "light",
		},
		Contact: ContactConfig{
			Outbox: OutboxLog,
			DBPath: "data/inbox.db",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "hanssen-portfolio",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
