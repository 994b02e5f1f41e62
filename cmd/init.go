package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/parsa1021/tripguide/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a tripguide config file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("%s already exists, overwrite", cfgFile),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				fmt.Println("Aborted.")
				return nil
			}
		}

		cfg := config.DefaultConfig()

		source := promptui.Prompt{
			Label:   "Guide data source (URL or file path)",
			Default: cfg.DataSource,
		}
		if v, err := source.Run(); err == nil && v != "" {
			cfg.DataSource = v
		} else if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}

		title := promptui.Prompt{
			Label:   "Site title",
			Default: cfg.Title,
		}
		if v, err := title.Run(); err == nil && v != "" {
			cfg.Title = v
		}

		port := promptui.Prompt{
			Label:   "Server port",
			Default: strconv.Itoa(cfg.Port),
			Validate: func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n <= 0 || n > 65535 {
					return fmt.Errorf("must be a port number")
				}
				return nil
			},
		}
		if v, err := port.Run(); err == nil {
			cfg.Port, _ = strconv.Atoi(v)
		}

		theme := promptui.Select{
			Label: "Default theme",
			Items: []string{string(config.ThemeLight), string(config.ThemeDark)},
		}
		if _, v, err := theme.Run(); err == nil {
			cfg.DefaultTheme = config.Theme(v)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", cfgFile)
		fmt.Println("Run `tripguide serve` to start.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
