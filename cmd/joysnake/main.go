// joysnake is a terminal snake game steered by an emulated analog joystick.
//
// Usage:
//
//	joysnake play            - Play in the terminal
//	joysnake menu            - Pick a variant, then play
//	joysnake sim             - Run the game headless and print the result
//	joysnake variants        - List variant presets
//	joysnake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.joysnake/configs, ./configs)
//	--variant <name>    - Variant preset applied over the config
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagVariant  string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "joysnake",
	Short: "Joystick Snake - the wrap-around snake game in your terminal",
	Long: `Joystick Snake is the classic snake game on a wrap-around board,
steered through an emulated analog stick.

Available commands:
  play      - Play in the terminal
  menu      - Pick a variant from a list, then play
  sim       - Run the game headless and print the final state
  variants  - Show the variant presets
  config    - Print the effective configuration as YAML

Examples:
  joysnake play
  joysnake play --variant deluxe
  joysnake sim --ticks 5000 --autopilot --seed 42
  joysnake config --variant timed > configs/snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Variant preset: classic, guarded, timed, hazard, deluxe")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(configCmd)
}
