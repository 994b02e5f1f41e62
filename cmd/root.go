package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tripguide",
	Short: "Offline-first travel guide site",
	Long: `Tripguide loads an itinerary document, renders it into a static
travel-guide site and serves it with offline caching, synonym-aware
search and a bounded search history.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".tripguide.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
