package cmd

import "github.com/spf13/cobra"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hanssen",
	Short: "Portfolio site for the hanssen photography studio",
	Long: `Serves the hanssen portfolio: home, work, about, contact and blog pages
with per-visitor navigation, a light/dark theme and the hero carousel.
The site can also be exported as static HTML.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".hanssen.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

