package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/joysnake/internal/audio"
	"github.com/vovakirdan/joysnake/internal/config"
	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake"
	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
	"github.com/vovakirdan/joysnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing Joystick Snake.

The keyboard stands in for the analog stick: a key deflects the stick fully
for one tick, then it springs back and the snake keeps its heading.

Controls:
  Arrows/WASD/HJKL  - Deflect the stick
  Space/Enter       - Press the stick button
  P/Esc             - Pause
  R                 - Restart (after game over)
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Variants:
  classic  - Obstacle after two foods, reversals allowed
  guarded  - Reversals ignored, no stick deadzone
  timed    - Food expires after a countdown from level 3
  hazard   - Hazard food costs a point from level 4
  deluxe   - Everything, plus sound and the intro screen

Examples:
  joysnake play
  joysnake play --variant hazard
  joysnake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, variant, source, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea; logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("config loaded", "source", source, "variant", variant)
	return playGame(cfg, variant, logger)
}

// playGame runs one interactive session.
func playGame(cfg config.SnakeConfig, variant config.Variant, logger *log.Logger) error {
	speaker, closeAudio := openSpeaker(cfg, logger)
	defer closeAudio()

	game, err := snake.New(snake.Options{
		Rules:   cfg.Rules(),
		Stick:   cfg.Stick(),
		Speaker: speaker,
		Logger:  logger,
		Label:   string(variant),
	})
	if err != nil {
		return err
	}

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed(),
	}

	return tui.Run(game, rc, tui.Options{
		Intro:   cfg.Features.Intro,
		Variant: string(variant),
	})
}

// openSpeaker returns the sound output for cfg. Audio failures are logged
// and the game continues silently.
func openSpeaker(cfg config.SnakeConfig, logger *log.Logger) (sim.Speaker, func()) {
	if !cfg.Features.Sound {
		return audio.Silent{}, func() {}
	}
	player := audio.NewPlayer(audioSettings(cfg.Audio), logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return audio.Silent{}, func() {}
	}
	return player, player.Close
}

// audioSettings converts the audio section to player settings.
func audioSettings(a config.AudioConfig) audio.Config {
	return audio.Config{
		SampleRate: a.SampleRate,
		Volume:     a.Volume,
		Buffer:     a.Buffer(),
	}
}
