package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/joysnake/internal/config"
	"github.com/vovakirdan/joysnake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant, then play",
	Long: `Show the variant presets in a table and play the chosen one.
After a game is quit, you return to the list to pick again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play the selected variant
  Q/Esc        - Quit

Examples:
  joysnake menu
  joysnake menu --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	items := make([]tui.PickerItem, 0, len(config.AllVariants()))
	for _, v := range config.AllVariants() {
		items = append(items, tui.PickerItem{Name: string(v), Description: v.Description()})
	}

	current := flagVariant
	for {
		width, height := terminalSize()
		choice, err := tui.RunPicker(items, current, width, height)
		if err != nil {
			return err
		}
		if choice == "" {
			return nil
		}
		current = choice

		flagVariant = choice
		cfg, variant, source, err := loadConfig()
		if err != nil {
			return err
		}
		logger.Info("config loaded", "source", source, "variant", variant)
		if err := playGame(cfg, variant, logger); err != nil {
			return err
		}
	}
}
