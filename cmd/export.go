package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanssen-studio/portfolio/internal/content"
	"github.com/hanssen-studio/portfolio/internal/progress"
	"github.com/hanssen-studio/portfolio/internal/session"
	"github.com/hanssen-studio/portfolio/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Render the site as static HTML",
	Long:  `Renders every page and blog post into dir. The exported pages toggle the theme and step the carousel in the browser.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		catalog, err := content.Load(cfg.Content.Dir)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}
		defaults := sessionDefaults(cfg)
		// The exporter brings its own sessions; this store only satisfies the site.
		sessions, err := session.NewStore(defaults, 0)
		if err != nil {
			return err
		}
		portfolio, err := site.New(site.Options{
			Meta:     siteMeta(cfg),
			Catalog:  catalog,
			Sessions: sessions,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("creating site: %w", err)
		}
		exporter, err := site.NewExporter(portfolio, defaults, progress.NewReporter())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		files, err := exporter.Export(ctx, args[0])
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}
		logger.Info("site exported", zap.String("dir", args[0]), zap.Int("pages", len(files)))
		fmt.Printf("Exported %d pages to %s\n", len(files), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
