// Package core holds the terminal-independent building blocks shared by the
// game and the platform: input frames, the screen buffer and colors. It has
// no Bubble Tea dependency, so game logic stays pure and testable.
package core

import "iter"

// Rect is a screen region in character cells; X and Y are the top-left
// corner.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Points yields every (x, y) inside r, row by row.
func (r Rect) Points() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Abs returns |x|.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
