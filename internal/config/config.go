// Package config provides YAML-based configuration loading and variant
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
	"github.com/vovakirdan/joysnake/internal/joystick"
)

// Validation errors. Validate wraps each violation in one of these.
var (
	ErrInvalidGrid     = errors.New("invalid grid")
	ErrInvalidSnake    = errors.New("invalid snake")
	ErrInvalidSpeed    = errors.New("invalid speed")
	ErrInvalidFood     = errors.New("invalid food")
	ErrInvalidObstacle = errors.New("invalid obstacle")
	ErrInvalidJoystick = errors.New("invalid joystick")
	ErrInvalidAudio    = errors.New("invalid audio")
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Snake    SnakeBody      `yaml:"snake"`
	Speed    SpeedConfig    `yaml:"speed"`
	Food     FoodConfig     `yaml:"food"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Joystick JoystickConfig `yaml:"joystick"`
	Features FeatureFlags   `yaml:"features"`
	Audio    AudioConfig    `yaml:"audio"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeBody defines the starting snake and steering policy.
type SnakeBody struct {
	StartX   int    `yaml:"start_x"`
	StartY   int    `yaml:"start_y"`
	Length   int    `yaml:"length"`
	Reversal string `yaml:"reversal"` // "allow" or "block"
}

// SpeedConfig defines the tick interval curve, in milliseconds.
type SpeedConfig struct {
	InitialMS int `yaml:"initial_ms"`
	MinMS     int `yaml:"min_ms"`
	StepMS    int `yaml:"step_ms"` // Subtracted per food eaten
}

// FoodConfig defines levelling and the special food kinds.
type FoodConfig struct {
	PerLevel       int `yaml:"per_level"`
	HazardLevel    int `yaml:"hazard_level"`
	CountdownLevel int `yaml:"countdown_level"`
	CountdownMS    int `yaml:"countdown_ms"`
}

// ObstacleConfig defines when and where the obstacle appears.
type ObstacleConfig struct {
	Trigger int    `yaml:"trigger"` // Foods eaten before it appears
	Margin  int    `yaml:"margin"`
	Layout  []Cell `yaml:"layout,omitempty"` // Empty means the built-in shape
}

// Cell is a grid coordinate.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// JoystickConfig defines the analog stick calibration.
type JoystickConfig struct {
	Max      int  `yaml:"max"`
	Center   int  `yaml:"center"`
	Deadzone int  `yaml:"deadzone"`
	InvertX  bool `yaml:"invert_x"`
	InvertY  bool `yaml:"invert_y"`
}

// FeatureFlags toggle the optional behaviours.
type FeatureFlags struct {
	Obstacle  bool `yaml:"obstacle"`
	Hazard    bool `yaml:"hazard"`
	Countdown bool `yaml:"countdown"`
	Sound     bool `yaml:"sound"`
	Intro     bool `yaml:"intro"`
}

// AudioConfig defines the speaker output.
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	BufferMS   int     `yaml:"buffer_ms"`
}

// Rules converts the configuration to simulation rules.
func (c SnakeConfig) Rules() sim.Rules {
	layout := sim.DefaultObstacleLayout()
	if len(c.Obstacle.Layout) > 0 {
		layout = make([]sim.Point, len(c.Obstacle.Layout))
		for i, cell := range c.Obstacle.Layout {
			layout[i] = sim.P(cell.X, cell.Y)
		}
	}

	return sim.Rules{
		Width:             c.Grid.Width,
		Height:            c.Grid.Height,
		Start:             sim.P(c.Snake.StartX, c.Snake.StartY),
		StartLength:       c.Snake.Length,
		InitialInterval:   ms(c.Speed.InitialMS),
		MinInterval:       ms(c.Speed.MinMS),
		IntervalStep:      ms(c.Speed.StepMS),
		FoodPerLevel:      c.Food.PerLevel,
		ObstacleTrigger:   c.Obstacle.Trigger,
		ObstacleMargin:    c.Obstacle.Margin,
		ObstacleLayout:    layout,
		CountdownDeadline: ms(c.Food.CountdownMS),
		CountdownLevel:    c.Food.CountdownLevel,
		HazardLevel:       c.Food.HazardLevel,
		Obstacle:          c.Features.Obstacle,
		Hazard:            c.Features.Hazard,
		Countdown:         c.Features.Countdown,
		Sound:             c.Features.Sound,
		Reversal:          sim.ReversalPolicy(c.Snake.Reversal),
	}
}

// Stick converts the joystick section to a stick calibration.
func (c SnakeConfig) Stick() joystick.Stick {
	return joystick.Stick{
		Max:      c.Joystick.Max,
		Center:   c.Joystick.Center,
		Deadzone: c.Joystick.Deadzone,
		InvertX:  c.Joystick.InvertX,
		InvertY:  c.Joystick.InvertY,
	}
}

// Buffer returns the output buffer length.
func (a AudioConfig) Buffer() time.Duration {
	return ms(a.BufferMS)
}

// Validate reports every violation at once.
func (c SnakeConfig) Validate() error {
	var errs []error
	fail := func(kind error, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)))
	}

	w, h := c.Grid.Width, c.Grid.Height
	if w < 1 || h < 1 {
		fail(ErrInvalidGrid, "size %dx%d must be at least 1x1", w, h)
	}

	if c.Snake.Length < 1 {
		fail(ErrInvalidSnake, "length %d must be positive", c.Snake.Length)
	} else if w >= 1 && c.Snake.Length > w {
		fail(ErrInvalidSnake, "length %d does not fit a grid %d wide", c.Snake.Length, w)
	}
	if w >= 1 && h >= 1 && !inside(c.Snake.StartX, c.Snake.StartY, w, h) {
		fail(ErrInvalidSnake, "start (%d,%d) outside the grid", c.Snake.StartX, c.Snake.StartY)
	}
	if !sim.ReversalPolicy(c.Snake.Reversal).Valid() {
		fail(ErrInvalidSnake, "reversal %q must be allow or block", c.Snake.Reversal)
	}

	if c.Speed.InitialMS <= 0 || c.Speed.MinMS <= 0 {
		fail(ErrInvalidSpeed, "intervals must be positive")
	} else if c.Speed.MinMS > c.Speed.InitialMS {
		fail(ErrInvalidSpeed, "min_ms %d exceeds initial_ms %d", c.Speed.MinMS, c.Speed.InitialMS)
	}
	if c.Speed.StepMS < 0 {
		fail(ErrInvalidSpeed, "step_ms %d must not be negative", c.Speed.StepMS)
	}

	if c.Food.PerLevel < 1 {
		fail(ErrInvalidFood, "per_level %d must be positive", c.Food.PerLevel)
	}
	if c.Features.Countdown && c.Food.CountdownMS <= 0 {
		fail(ErrInvalidFood, "countdown_ms %d must be positive", c.Food.CountdownMS)
	}

	if c.Obstacle.Margin < 0 {
		fail(ErrInvalidObstacle, "margin %d must not be negative", c.Obstacle.Margin)
	}
	if c.Obstacle.Trigger < 0 {
		fail(ErrInvalidObstacle, "trigger %d must not be negative", c.Obstacle.Trigger)
	}
	if w >= 1 && h >= 1 && c.Features.Obstacle {
		for _, p := range c.Rules().ObstacleLayout {
			if !inside(p.X, p.Y, w, h) {
				fail(ErrInvalidObstacle, "cell (%d,%d) outside the grid", p.X, p.Y)
				break
			}
		}
	}

	if err := c.Stick().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidJoystick, err))
	}

	if c.Features.Sound {
		if c.Audio.SampleRate <= 0 {
			fail(ErrInvalidAudio, "sample_rate %d must be positive", c.Audio.SampleRate)
		}
		if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
			fail(ErrInvalidAudio, "volume %v outside [0,1]", c.Audio.Volume)
		}
		if c.Audio.BufferMS <= 0 {
			fail(ErrInvalidAudio, "buffer_ms %d must be positive", c.Audio.BufferMS)
		}
	}

	return errors.Join(errs...)
}

func inside(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
