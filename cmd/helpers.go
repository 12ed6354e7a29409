package cmd

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hanssen-studio/portfolio/internal/config"
	"github.com/hanssen-studio/portfolio/internal/contact"
	"github.com/hanssen-studio/portfolio/internal/content"
	"github.com/hanssen-studio/portfolio/internal/db"
	"github.com/hanssen-studio/portfolio/internal/logging"
	"github.com/hanssen-studio/portfolio/internal/session"
	"github.com/hanssen-studio/portfolio/internal/site"
	"github.com/hanssen-studio/portfolio/internal/telemetry"
	"github.com/hanssen-studio/portfolio/internal/theme"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `hanssen init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// newTracing falls back to the standard OTLP endpoint variable when the
// config leaves the endpoint empty.
func newTracing(ctx context.Context, cfg *config.Config) (*telemetry.Tracing, error) {
	endpoint := cfg.Telemetry.OTLPEndpoint
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	tracing, err := telemetry.New(ctx, telemetry.Config{
		Endpoint:    endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return nil, fmt.Errorf("setting up tracing: %w", err)
	}
	return tracing, nil
}

func sessionDefaults(cfg *config.Config) session.Defaults {
	return session.Defaults{
		Theme:      theme.ParsePreference(cfg.Theme.Default),
		Slides:     content.HeroImages,
		SlideStart: content.HeroStart,
	}
}

func siteMeta(cfg *config.Config) site.Meta {
	return site.Meta{
		Name:        cfg.Site.Name,
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
	}
}

// newOutbox returns the configured contact outbox and a function releasing
// its resources.
func newOutbox(cfg *config.Config, logger *zap.Logger) (contact.Outbox, func() error, error) {
	if cfg.Contact.Outbox != config.OutboxSQLite {
		return contact.NewLogOutbox(logger), func() error { return nil }, nil
	}
	database, err := db.Open(cfg.Contact.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening inbox database: %w", err)
	}
	logger.Info("recording contact submissions", zap.String("db", database.Path()))
	return contact.NewInbox(database), database.Close, nil
}
