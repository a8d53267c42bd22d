package sim

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is wrapped by every error returned from Rules.Validate.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds every tunable constant of a game plus the feature flags that
// select between the historical variants.
type Rules struct {
	Width  int // Grid width in cells
	Height int // Grid height in cells

	Start       Point // Initial head cell; the body trails to the left
	StartLength int

	InitialInterval time.Duration
	MinInterval     time.Duration
	IntervalStep    time.Duration // Subtracted per food eaten

	FoodPerLevel int

	ObstacleTrigger int // Normal foods eaten before the obstacle appears
	ObstacleMargin  int // Cells around obstacle cells where food may not spawn
	ObstacleLayout  []Point

	CountdownDeadline time.Duration
	CountdownLevel    int // Food spawned at or above this level is timed
	HazardLevel       int // Hazard food may spawn at or above this level

	Obstacle  bool
	Hazard    bool
	Countdown bool
	Sound     bool

	Reversal ReversalPolicy
}

// DefaultObstacleLayout returns the fixed obstacle shape for the default
// 32x19 board.
func DefaultObstacleLayout() []Point {
	layout := make([]Point, 0, 22)
	for x := 13; x <= 18; x++ {
		layout = append(layout, P(x, 5))
	}
	layout = append(layout, P(13, 6), P(13, 7))
	for x := 13; x <= 18; x++ {
		layout = append(layout, P(x, 8))
	}
	layout = append(layout, P(18, 9), P(18, 10))
	for x := 18; x >= 13; x-- {
		layout = append(layout, P(x, 11))
	}
	return layout
}

// DefaultRules returns the base variant: obstacle enabled, no hazard food,
// no countdown, no sound, reversals allowed.
func DefaultRules() Rules {
	return Rules{
		Width:             32,
		Height:            19,
		Start:             P(12, 16),
		StartLength:       3,
		InitialInterval:   200 * time.Millisecond,
		MinInterval:       50 * time.Millisecond,
		IntervalStep:      10 * time.Millisecond,
		FoodPerLevel:      2,
		ObstacleTrigger:   2,
		ObstacleMargin:    1,
		ObstacleLayout:    DefaultObstacleLayout(),
		CountdownDeadline: 5 * time.Second,
		CountdownLevel:    3,
		HazardLevel:       4,
		Obstacle:          true,
		Reversal:          ReversalAllow,
	}
}

// Cells returns the number of cells on the grid, the upper bound on snake length.
func (r Rules) Cells() int {
	return r.Width * r.Height
}

// Validate reports every constraint the rules violate.
func (r Rules) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidRules}, args...)...))
	}

	if r.Width < 1 || r.Height < 1 {
		fail("grid %dx%d must be at least 1x1", r.Width, r.Height)
	}
	if r.StartLength < 1 {
		fail("start length %d must be positive", r.StartLength)
	}
	if r.Width >= 1 && r.StartLength > r.Width {
		fail("start length %d does not fit a grid %d cells wide", r.StartLength, r.Width)
	}
	if r.Width >= 1 && r.Height >= 1 && (r.Start.X < 0 || r.Start.X >= r.Width || r.Start.Y < 0 || r.Start.Y >= r.Height) {
		fail("start cell (%d,%d) is outside the grid", r.Start.X, r.Start.Y)
	}
	if r.InitialInterval <= 0 || r.MinInterval <= 0 {
		fail("tick intervals must be positive")
	}
	if r.MinInterval > r.InitialInterval {
		fail("min interval %v exceeds initial interval %v", r.MinInterval, r.InitialInterval)
	}
	if r.IntervalStep < 0 {
		fail("interval step %v must not be negative", r.IntervalStep)
	}
	if r.FoodPerLevel < 1 {
		fail("food per level %d must be positive", r.FoodPerLevel)
	}
	if r.ObstacleTrigger < 0 {
		fail("obstacle trigger %d must not be negative", r.ObstacleTrigger)
	}
	if r.ObstacleMargin < 0 {
		fail("obstacle margin %d must not be negative", r.ObstacleMargin)
	}
	for _, p := range r.ObstacleLayout {
		if p.X < 0 || p.X >= r.Width || p.Y < 0 || p.Y >= r.Height {
			fail("obstacle cell (%d,%d) is outside the grid", p.X, p.Y)
			break
		}
	}
	if r.Countdown && r.CountdownDeadline <= 0 {
		fail("countdown deadline %v must be positive", r.CountdownDeadline)
	}
	if !r.Reversal.Valid() {
		fail("unknown reversal policy %q", r.Reversal)
	}

	return errors.Join(errs...)
}
