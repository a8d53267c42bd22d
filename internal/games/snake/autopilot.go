package snake

import (
	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
	"github.com/vovakirdan/joysnake/internal/joystick"
)

// Autopilot is a stick source that steers toward the food, preferring
// moves that do not run into the body or the obstacle. It looks one cell
// ahead only, so it still loses eventually.
type Autopilot struct {
	game *Game
}

// NewAutopilot creates an autopilot for g. Install it with g.SetSource.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g}
}

var _ joystick.Source = (*Autopilot)(nil)

// Read returns a full deflection toward the chosen heading, or a centered
// stick to keep going straight.
func (a *Autopilot) Read() joystick.Reading {
	stick := a.game.opts.Stick
	s := a.game.sim
	if s == nil || s.GameOver() {
		return stick.Centered()
	}
	d, ok := a.choose(s)
	if !ok || d == s.Direction() {
		return stick.Centered()
	}
	return stick.ReadingFor(d)
}

func (a *Autopilot) choose(s *sim.Game) (sim.Direction, bool) {
	rules := s.Rules()
	head := s.Head()
	blocked := make(map[sim.Point]bool)
	body := s.Snake()
	// The tail moves away this tick.
	for _, p := range body[:len(body)-1] {
		blocked[p] = true
	}
	for _, p := range s.Obstacle() {
		blocked[p] = true
	}

	target, hasFood := s.Food()
	best, bestDist, found := sim.DirUp, 0, false
	for _, d := range []sim.Direction{sim.DirUp, sim.DirRight, sim.DirDown, sim.DirLeft} {
		if d == s.Direction().Opposite() && len(body) > 1 {
			continue
		}
		next := head.Add(d.Delta())
		next = sim.P(wrapCoord(next.X, rules.Width), wrapCoord(next.Y, rules.Height))
		if blocked[next] {
			continue
		}
		dist := 0
		if hasFood && target.Kind != sim.FoodHazard {
			dist = torusDist(next, target.Pos, rules.Width, rules.Height)
		}
		if !found || dist < bestDist || (dist == bestDist && d == s.Direction()) {
			best, bestDist, found = d, dist, true
		}
	}
	return best, found
}

func wrapCoord(v, n int) int {
	return ((v % n) + n) % n
}

// torusDist is the Manhattan distance on a wrapping grid.
func torusDist(a, b sim.Point, w, h int) int {
	dx := core.Abs(a.X - b.X)
	dy := core.Abs(a.Y - b.Y)
	return min(dx, w-dx) + min(dy, h-dy)
}
