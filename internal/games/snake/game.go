// Package snake adapts the snake simulation to the platform's game
// contract: it feeds the stick, paces ticks, and keeps the display.
package snake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
	"github.com/vovakirdan/joysnake/internal/joystick"
)

// Options configures a Game.
type Options struct {
	Rules   sim.Rules
	Stick   joystick.Stick
	Speaker sim.Speaker      // nil plays nothing
	Logger  *log.Logger      // nil discards
	Source  joystick.Source  // nil emulates the stick from keys
	Clock   func() time.Time // nil uses time.Now
	Label   string           // Shown in the title, e.g. the variant name

	// VirtualTime replaces Clock with game time that advances by the
	// current interval each tick, for runs that do not sleep.
	VirtualTime bool
}

// Game implements the snake game on top of sim.Game.
type Game struct {
	opts     Options
	logger   *log.Logger
	sim      *sim.Game
	canvas   *Canvas
	keyboard *joystick.Keyboard
	source   joystick.Source
	button   joystick.Button
	rng      *rand.Rand
	clock    func() time.Time
	vnow     time.Time

	screenW int
	screenH int
	paused  bool
	steps   uint64
}

// New validates the options and creates a game. Reset must be called
// before the first Step.
func New(opts Options) (*Game, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	if err := opts.Stick.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	g := &Game{opts: opts, logger: opts.Logger}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.clock = opts.Clock
	if opts.VirtualTime {
		g.clock = func() time.Time { return g.vnow }
	}
	g.keyboard = joystick.NewKeyboard(opts.Stick)
	g.source = opts.Source
	if g.source == nil {
		g.source = g.keyboard
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.opts.Label != "" {
		return "Joystick Snake (" + g.opts.Label + ")"
	}
	return "Joystick Snake"
}

// Reset starts a fresh game: the equivalent of power-cycling the board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.steps = 0

	s, err := sim.New(g.opts.Rules, rand.New(rand.NewSource(g.rng.Int63())), g.clock)
	if err != nil {
		// Rules were validated in New.
		panic(err)
	}
	g.sim = s
	g.canvas = NewCanvas(g.opts.Rules.Width, g.opts.Rules.Height)
	sim.Apply(s.Drain(), g.canvas, nil)

	g.logger.Info("game started", "seed", cfg.Seed, "grid", fmt.Sprintf("%dx%d", g.opts.Rules.Width, g.opts.Rules.Height))
}

// Resize records a new terminal size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Button returns the fire button. Press may be called from any goroutine;
// the press is picked up on the next Step.
func (g *Game) Button() *joystick.Button {
	return &g.button
}

// Step polls the button, reads the stick and advances the simulation by
// one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.sim.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.sim.GameOver() {
		g.paused = !g.paused
	}

	if input.Has(core.ActionButton) {
		g.button.Press()
	}
	if g.button.Take() {
		g.logger.Info("button pressed", "presses", g.button.Presses())
	}

	if g.paused || g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if input.Last.IsDirection() {
		g.keyboard.Push(input.Last)
	}
	if d, ok := g.opts.Stick.Decode(g.source.Read()); ok {
		g.sim.SetDirection(d)
	}

	before := g.sim.Snapshot()
	prevFood, hadFood := g.sim.Food()

	if g.opts.VirtualTime {
		g.vnow = g.vnow.Add(g.sim.Interval())
	}
	result := g.sim.Tick()
	g.steps++
	sim.Apply(g.sim.Drain(), g.canvas, g.opts.Speaker)

	g.logResult(result, before, prevFood, hadFood)
	return core.StepResult{State: g.State(), Moved: true}
}

func (g *Game) logResult(result sim.Result, before sim.Snapshot, prevFood sim.Food, hadFood bool) {
	switch result {
	case sim.ResultAteNormal:
		g.logger.Info("food eaten", "score", g.sim.Score(), "level", g.sim.Level(), "interval", g.sim.Interval())
	case sim.ResultAteHazard:
		g.logger.Info("hazard eaten", "score", g.sim.Score(), "level", g.sim.Level())
	case sim.ResultGameOver:
		g.logger.Info("game over", "score", g.sim.Score(), "level", g.sim.Level(), "length", g.sim.Len(), "ticks", g.sim.Ticks())
		return
	case sim.ResultContinue:
		if food, ok := g.sim.Food(); hadFood && prevFood.Timed && (!ok || food != prevFood) {
			g.logger.Debug("food expired", "x", prevFood.Pos.X, "y", prevFood.Pos.Y)
		}
	}

	if !before.Obstacle && g.sim.ObstaclePresent() {
		g.logger.Info("obstacle created", "cells", len(g.sim.Obstacle()))
	}
	if g.sim.Level() != before.Level {
		g.logger.Debug("level changed", "from", before.Level, "to", g.sim.Level())
	}
}

// TickInterval returns how long to wait before the next Step.
func (g *Game) TickInterval() time.Duration {
	return g.sim.Interval()
}

// MinSize returns the smallest terminal that fits the board.
func (g *Game) MinSize() (int, int) {
	return g.canvas.Screen().Width(), g.canvas.Screen().Height()
}

// Render draws the canvas centered into dst.
func (g *Game) Render(dst *core.Screen) {
	src := g.canvas.Screen()
	if dst.Width() < src.Width() || dst.Height() < src.Height() {
		y := dst.Height() / 2
		dst.DrawTextCentered(y-1, "Window too small")
		dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", src.Width(), src.Height(), dst.Width(), dst.Height()))
		return
	}

	x := (dst.Width() - src.Width()) / 2
	y := (dst.Height() - src.Height()) / 2
	dst.Blit(src, x, y)

	if g.paused {
		msg := " PAUSED "
		w := len(msg) + 2
		box := core.NewRect((dst.Width()-w)/2, dst.Height()/2-1, w, 3)
		dst.FillRect(box, ' ', core.ColorDefault)
		dst.DrawBox(box)
		dst.DrawTextColor(box.X+1, box.Y+1, msg, core.ColorYellow)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		Level:    g.sim.Level(),
		Length:   g.sim.Len(),
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
	}
}

// SetSource replaces the stick source. nil restores keyboard emulation.
func (g *Game) SetSource(src joystick.Source) {
	if src == nil {
		src = g.keyboard
	}
	g.source = src
}

// Sim exposes the underlying simulation for read-only inspection.
func (g *Game) Sim() *sim.Game {
	return g.sim
}

// Canvas returns the persistent display.
func (g *Game) Canvas() *Canvas {
	return g.canvas
}

// ErrNotStarted is returned by Run when Reset has not been called.
var ErrNotStarted = errors.New("snake: game not started")

// Run steps the game headlessly without sleeping until it ends, ctx is
// cancelled or maxSteps is reached (0 means no limit).
func (g *Game) Run(ctx context.Context, maxSteps uint64) (Snapshot, error) {
	if g.sim == nil {
		return Snapshot{}, ErrNotStarted
	}
	input := core.NewInputFrame()
	for maxSteps == 0 || g.steps < maxSteps {
		if err := ctx.Err(); err != nil {
			return g.Snapshot(), err
		}
		g.Step(input)
		if g.sim.GameOver() {
			break
		}
	}
	return g.Snapshot(), nil
}
