package sim

import (
	"fmt"
	"time"

	"github.com/vovakirdan/joysnake/internal/core"
)

// HUDRows is the number of text rows reported below the grid.
const HUDRows = 1

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []Point {
	return append([]Point(nil), g.snake...)
}

// Len returns the snake length.
func (g *Game) Len() int {
	return len(g.snake)
}

// Head returns the head cell.
func (g *Game) Head() Point {
	return g.snake[0]
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.direction
}

// Food returns a copy of the active food and whether one exists.
func (g *Game) Food() (Food, bool) {
	if g.food == nil {
		return Food{}, false
	}
	return *g.food, true
}

// ObstaclePresent reports whether the obstacle has been created.
func (g *Game) ObstaclePresent() bool {
	return g.obstacle != nil
}

// Obstacle returns the obstacle cells, or nil before it has been created.
func (g *Game) Obstacle() []Point {
	if g.obstacle == nil {
		return nil
	}
	return append([]Point(nil), g.rules.ObstacleLayout...)
}

// Score returns the current score. Hazard food can drive it negative.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.level
}

// FoodEaten returns the number of normal foods eaten.
func (g *Game) FoodEaten() int {
	return g.foodEaten
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// Phase returns the state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// GameOver reports whether the game has reached its terminal phase.
func (g *Game) GameOver() bool {
	return g.phase == PhaseGameOver
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Ticks returns the number of simulation steps taken.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Remaining returns the countdown time left on the current food, and false
// when the food is untimed or absent.
func (g *Game) Remaining() (time.Duration, bool) {
	if g.food == nil || !g.food.Timed {
		return 0, false
	}
	left := g.rules.CountdownDeadline - g.now().Sub(g.food.SpawnedAt)
	return max(left, 0), true
}

// Drain returns the intents collected since the last call and resets the queue.
func (g *Game) Drain() []Intent {
	out := g.intents
	g.intents = nil
	return out
}

// Redraw queues intents that repaint the whole display from current state.
func (g *Game) Redraw() {
	if g.phase == PhaseGameOver {
		g.endGameBanner()
		return
	}
	g.emit(clearRegion(g.screenRect(), ColorBackground))
	for _, p := range g.rules.ObstacleLayout {
		if g.obstacle[p] {
			g.emit(drawCell(p, ColorObstacle))
		}
	}
	if g.food != nil {
		g.emit(drawCell(g.food.Pos, foodColor(g.food.Kind)))
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		g.emit(drawCell(g.snake[i], ColorSnake))
	}
	g.drawHUD()
}

// screenRect covers the grid and the HUD rows, in cells.
func (g *Game) screenRect() core.Rect {
	return core.NewRect(0, 0, g.rules.Width, g.rules.Height+HUDRows)
}

// drawHUD repaints the score, level and countdown row.
func (g *Game) drawHUD() {
	row := g.rules.Height
	g.emit(clearRegion(core.NewRect(0, row, g.rules.Width, HUDRows), ColorBackground))
	g.emit(drawText(P(0, row), fmt.Sprintf("Score: %d", g.score), 2, ColorText))
	g.emit(drawText(P(g.rules.Width/2, row), fmt.Sprintf("Level: %d", g.level), 2, ColorText))
	if left, ok := g.Remaining(); ok {
		secs := int((left + time.Second - 1) / time.Second)
		g.emit(drawText(P(g.rules.Width*3/4, row), fmt.Sprintf("Time: %d", secs), 2, ColorTimer))
	}
}
