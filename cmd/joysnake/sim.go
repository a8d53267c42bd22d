package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake"
	"github.com/vovakirdan/joysnake/internal/joystick"
)

var (
	flagTicks     uint64
	flagAutopilot bool
	flagBoard     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and print the result",
	Long: `Run the simulation without a terminal UI and print the final state.

By default the stick is wiggled randomly every tick. With --autopilot it
steers toward the food instead. Countdown timers run on simulated time, so
a run finishes as fast as the CPU allows.

Examples:
  joysnake sim
  joysnake sim --ticks 5000 --autopilot --seed 42
  joysnake sim --variant deluxe --board --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 1000, "Maximum ticks to run (0 = until game over)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer toward the food instead of randomly")
	simCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final board")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, variant, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source, "variant", variant)

	s := seed()
	stick := cfg.Stick()
	game, err := snake.New(snake.Options{
		Rules:       cfg.Rules(),
		Stick:       stick,
		Logger:      logger,
		Label:       string(variant),
		Source:      joystick.NewRandom(stick, rand.New(rand.NewSource(s+1))),
		VirtualTime: true,
	})
	if err != nil {
		return err
	}
	game.Reset(core.RuntimeConfig{Seed: s})
	if flagAutopilot {
		game.SetSource(snake.NewAutopilot(game))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	snap, err := game.Run(ctx, flagTicks)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted", "tick", snap.Tick)
	case err != nil:
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:       %d\n", s)
	fmt.Fprintf(out, "phase:      %s\n", snap.Phase)
	fmt.Fprintf(out, "ticks:      %d\n", snap.Tick)
	fmt.Fprintf(out, "score:      %d\n", snap.Score)
	fmt.Fprintf(out, "level:      %d\n", snap.Level)
	fmt.Fprintf(out, "food eaten: %d\n", snap.FoodEaten)
	fmt.Fprintf(out, "length:     %d\n", snap.SnakeLen)
	fmt.Fprintf(out, "heading:    %s\n", snap.Dir)
	fmt.Fprintf(out, "obstacle:   %t\n", snap.Obstacle)
	fmt.Fprintf(out, "interval:   %s\n", snap.Interval)
	fmt.Fprintf(out, "presses:    %d\n", snap.Presses)

	if flagBoard {
		fmt.Fprintln(out)
		fmt.Fprintln(out, game.Canvas().Screen().String())
	}
	return nil
}
