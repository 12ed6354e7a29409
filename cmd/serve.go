package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanssen-studio/portfolio/internal/content"
	"github.com/hanssen-studio/portfolio/internal/server"
	"github.com/hanssen-studio/portfolio/internal/session"
	"github.com/hanssen-studio/portfolio/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long:  `Starts the portfolio HTTP server. Each browser session gets its own navigation, theme and carousel state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		tracing, err := newTracing(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(shutdownCtx); err != nil {
				logger.Warn("flushing traces", zap.Error(err))
			}
		}()

		catalog, err := content.Load(cfg.Content.Dir)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		outbox, closeOutbox, err := newOutbox(cfg, logger)
		if err != nil {
			return err
		}
		defer closeOutbox()

		durations := cfg.Durations()
		sessions, err := session.NewStore(sessionDefaults(cfg), durations.IdleTimeout)
		if err != nil {
			return fmt.Errorf("creating session store: %w", err)
		}
		go sessions.Run(ctx, durations.SweepInterval, logger)

		portfolio, err := site.New(site.Options{
			Meta:     siteMeta(cfg),
			Catalog:  catalog,
			Sessions: sessions,
			Outbox:   outbox,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("creating site: %w", err)
		}

		srv := server.New(server.Config{
			Port:              cfg.Server.Port,
			AllowAll:          cfg.Server.AllowAllOrigins,
			ReadHeaderTimeout: durations.ReadHeaderTimeout,
			RequestTimeout:    durations.RequestTimeout,
		}, logger, tracing)
		portfolio.RegisterRoutes(srv.Router())

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutting down server", zap.Error(err))
			}
		}()

		logger.Info("starting portfolio",
			zap.String("version", Version),
			zap.Int("port", cfg.Server.Port),
			zap.Int("posts", len(catalog.Slugs())),
			zap.String("outbox", string(cfg.Contact.Outbox)),
			zap.Bool("tracing", tracing.Enabled()),
		)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
