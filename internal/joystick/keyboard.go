package joystick

import (
	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
)

// Keyboard emulates the stick from directional actions. A key press holds
// the stick at full deflection for exactly one Read, after which it springs
// back to center, since terminals report presses but not releases.
type Keyboard struct {
	stick   Stick
	reading Reading
}

// NewKeyboard creates a centered keyboard stick.
func NewKeyboard(stick Stick) *Keyboard {
	return &Keyboard{stick: stick, reading: stick.Centered()}
}

// Push deflects the stick for the given action. Non-directional actions are
// ignored.
func (k *Keyboard) Push(a core.Action) {
	switch a {
	case core.ActionUp:
		k.reading = k.stick.ReadingFor(sim.DirUp)
	case core.ActionDown:
		k.reading = k.stick.ReadingFor(sim.DirDown)
	case core.ActionLeft:
		k.reading = k.stick.ReadingFor(sim.DirLeft)
	case core.ActionRight:
		k.reading = k.stick.ReadingFor(sim.DirRight)
	}
}

// Read returns the held reading and recenters.
func (k *Keyboard) Read() Reading {
	r := k.reading
	k.reading = k.stick.Centered()
	return r
}
