// Package joystick decodes a two-axis analog stick into snake headings and
// emulates one from keyboard input.
package joystick

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
)

// Reading is one sample of both axes, as raw ADC values.
type Reading struct {
	X, Y int
}

// Source produces stick samples, one per poll.
type Source interface {
	Read() Reading
}

// Stick describes how raw readings map onto headings.
type Stick struct {
	Max      int  // Full-scale raw value (1023 for a 10-bit ADC)
	Center   int  // Raw value at rest
	Deadzone int  // Deflection at or below this is ignored
	InvertX  bool // Positive X deflection means left
	InvertY  bool // Positive Y deflection means up
}

// DefaultStick returns a 10-bit stick mounted upside down: centred at
// 512, a 200 deadzone, and both axes inverted.
func DefaultStick() Stick {
	return Stick{
		Max:      1023,
		Center:   512,
		Deadzone: 200,
		InvertX:  true,
		InvertY:  true,
	}
}

// Centered returns the at-rest reading.
func (s Stick) Centered() Reading {
	return Reading{X: s.Center, Y: s.Center}
}

// Validate checks that the center and deadzone fit inside the raw range.
func (s Stick) Validate() error {
	if s.Max < 1 {
		return fmt.Errorf("joystick: max %d must be positive", s.Max)
	}
	if s.Center < 0 || s.Center > s.Max {
		return fmt.Errorf("joystick: center %d outside [0,%d]", s.Center, s.Max)
	}
	if s.Deadzone < 0 {
		return errors.New("joystick: deadzone must not be negative")
	}
	if s.Deadzone >= s.Max-s.Center && s.Deadzone >= s.Center {
		return fmt.Errorf("joystick: deadzone %d leaves no usable deflection", s.Deadzone)
	}
	return nil
}

// Decode returns the heading selected by r. Only the axis with the larger
// deflection is considered; ties go to the vertical axis. The second return
// is false when the dominant deflection does not exceed the deadzone.
func (s Stick) Decode(r Reading) (sim.Direction, bool) {
	dx := r.X - s.Center
	dy := r.Y - s.Center

	if core.Abs(dx) > core.Abs(dy) {
		if core.Abs(dx) <= s.Deadzone {
			return 0, false
		}
		right := dx > 0
		if s.InvertX {
			right = !right
		}
		if right {
			return sim.DirRight, true
		}
		return sim.DirLeft, true
	}

	if core.Abs(dy) <= s.Deadzone {
		return 0, false
	}
	down := dy > 0
	if s.InvertY {
		down = !down
	}
	if down {
		return sim.DirDown, true
	}
	return sim.DirUp, true
}

// ReadingFor returns a full-deflection reading that decodes to d.
func (s Stick) ReadingFor(d sim.Direction) Reading {
	r := s.Centered()
	switch d {
	case sim.DirRight, sim.DirLeft:
		r.X = s.extreme(d == sim.DirRight, s.InvertX)
	case sim.DirDown, sim.DirUp:
		r.Y = s.extreme(d == sim.DirDown, s.InvertY)
	}
	return r
}

// extreme picks the raw end of an axis: the high end for a positive
// deflection unless the axis is inverted.
func (s Stick) extreme(positive, inverted bool) int {
	if positive != inverted {
		return s.Max
	}
	return 0
}
