package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/joysnake/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after the search order and --variant
are applied. The output can be saved as a config file.

Search order:
  1. --config <path>
  2. ~/.joysnake/configs/snake.yaml
  3. ./configs/snake.yaml
  4. Built-in defaults

Examples:
  joysnake config
  joysnake config --variant deluxe > ~/.joysnake/configs/snake.yaml
  joysnake config --default`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, _, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	if flagVariant != "" {
		fmt.Fprintf(out, "# variant: %s\n", flagVariant)
	}
	_, err = out.Write(data)
	return err
}
