package sim

import "time"

// Snapshot captures the observable simulation state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Level     int
	FoodEaten int
	SnakeLen  int
	Head      Point
	Dir       Direction
	HasFood   bool
	Food      Point
	FoodKind  FoodKind
	Obstacle  bool
	Interval  time.Duration
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		Level:     g.level,
		FoodEaten: g.foodEaten,
		SnakeLen:  len(g.snake),
		Head:      g.snake[0],
		Dir:       g.direction,
		Obstacle:  g.obstacle != nil,
		Interval:  g.interval,
	}
	if g.food != nil {
		s.HasFood = true
		s.Food = g.food.Pos
		s.FoodKind = g.food.Kind
	}
	return s
}
