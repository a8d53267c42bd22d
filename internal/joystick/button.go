package joystick

import "sync/atomic"

// Button is the stick's push switch. Press may be called from any goroutine
// (the equivalent of an edge interrupt); the control loop consumes presses
// once per tick with Take. Press only sets a flag.
type Button struct {
	pressed atomic.Bool
	count   atomic.Uint64
}

// Press records a falling edge.
func (b *Button) Press() {
	b.pressed.Store(true)
	b.count.Add(1)
}

// Take reports whether the button was pressed since the last call and clears
// the flag.
func (b *Button) Take() bool {
	return b.pressed.Swap(false)
}

// Presses returns the total number of presses recorded.
func (b *Button) Presses() uint64 {
	return b.count.Load()
}
