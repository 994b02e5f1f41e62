package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/parsa1021/tripguide/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Generate the site and serve it with offline caching",
	Long: `Loads the guide data (falling back to the last stored copy when the
source is unreachable), generates the static site, installs the offline
cache for the current version, and starts the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}

		a := app.New(cfg)
		defer a.Close()

		// Progress over the precache list during cache install.
		var bar *progressbar.ProgressBar
		onPrecache := func(path string) {
			if bar == nil {
				bar = progressbar.Default(-1, "precaching")
			}
			bar.Add(1)
		}

		fmt.Printf("Serving at http://localhost:%d — press Ctrl+C to stop\n", cfg.Port)
		return a.Run(cmd.Context(), onPrecache)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}
