package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"taskdeck/internal/infrastructure/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long: `Inspect the taskdeck configuration.

The config file is created with defaults on first run. Styles and
keybindings for the TUI and the form dialog are configurable there.

Examples:
  # Show the effective configuration
  taskdeck config show

  # Print the config file location
  taskdeck config path`,
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		printer.Print("%s", string(data))
		return nil
	},
}

// configPathCmd prints the config file path
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			printer.Println("%s", configPath)
			return nil
		}

		loader, err := config.NewLoader()
		if err != nil {
			return err
		}
		printer.Println("%s", loader.GetConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
