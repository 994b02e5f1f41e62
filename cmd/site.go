package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsa1021/tripguide/internal/db"
	"github.com/parsa1021/tripguide/internal/guide"
	"github.com/parsa1021/tripguide/internal/site"
	"github.com/parsa1021/tripguide/internal/storage"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the static guide site",
	Long:  `Loads the guide data and writes the self-contained static site into the configured output directory, without starting a server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		loader := guide.NewLoader(cfg.DataSource, storage.NewStore(database))
		data, fromCache, err := loader.Load(cmd.Context())
		if err != nil {
			return err
		}
		if fromCache {
			fmt.Println("Source unreachable — generating from the last stored copy")
		}

		gen := site.NewGenerator(data, cfg.SiteDir, cfg.Title)
		gen.Theme = string(cfg.DefaultTheme)
		assets, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generating site: %w", err)
		}

		fmt.Printf("Static site generated: %s (%d assets)\n", cfg.SiteDir, len(assets))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(siteCmd)
}
