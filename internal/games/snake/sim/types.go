// Package sim is the snake simulation core: snake body, food and obstacle
// placement, collisions and the level/speed progression. It has no terminal
// or hardware dependencies; drawing and sound are reported as intents.
package sim

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// P is shorthand for constructing a Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is the snake's heading, clockwise from up.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// Delta returns the one-cell step for d.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Y: -1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirRight:
		return Point{X: 1}
	}
	return Point{}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// FoodKind distinguishes rewarding food from hazard food.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodHazard
)

func (k FoodKind) String() string {
	if k == FoodHazard {
		return "hazard"
	}
	return "normal"
}

// Result is the outcome of a single Tick.
type Result int

const (
	ResultContinue Result = iota
	ResultAteNormal
	ResultAteHazard
	ResultGameOver
)

func (r Result) String() string {
	switch r {
	case ResultContinue:
		return "continue"
	case ResultAteNormal:
		return "ate_normal"
	case ResultAteHazard:
		return "ate_hazard"
	case ResultGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Phase is the game state machine. GameOver is terminal.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
)

// ReversalPolicy controls whether SetDirection accepts a 180° turn.
type ReversalPolicy string

const (
	// ReversalAllow overwrites the heading unconditionally. A reversal then
	// drives the head into the neck on the next tick.
	ReversalAllow ReversalPolicy = "allow"
	// ReversalBlock ignores a request for the exact opposite heading.
	ReversalBlock ReversalPolicy = "block"
)

// Valid reports whether p names a known policy.
func (p ReversalPolicy) Valid() bool {
	return p == ReversalAllow || p == ReversalBlock
}
