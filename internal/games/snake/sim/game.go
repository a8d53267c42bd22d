package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/joysnake/internal/core"
)

// Food is the single active food item.
type Food struct {
	Pos       Point
	Kind      FoodKind
	Timed     bool      // Whether the countdown applies to this item
	SpawnedAt time.Time // Clock reading at spawn
}

// Game owns the complete simulation state. It is not safe for concurrent use;
// the control loop calls SetDirection and Tick in strict alternation.
type Game struct {
	rules Rules
	rng   *rand.Rand
	now   func() time.Time

	snake     []Point // Head at index 0
	direction Direction
	food      *Food
	obstacle  map[Point]bool

	score     int
	level     int
	interval  time.Duration
	foodEaten int // Normal foods eaten
	tick      uint64
	phase     Phase

	intents []Intent
}

// New validates rules and creates a running game with a three-cell snake
// heading right and the first food placed. A nil now uses time.Now.
func New(rules Rules, rng *rand.Rand, now func() time.Time) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}

	rules.ObstacleLayout = append([]Point(nil), rules.ObstacleLayout...)
	g := &Game{
		rules:     rules,
		rng:       rng,
		now:       now,
		direction: DirRight,
		level:     1,
		interval:  rules.InitialInterval,
		phase:     PhaseRunning,
	}

	g.snake = make([]Point, 0, min(rules.Cells(), 64))
	for i := range rules.StartLength {
		g.snake = append(g.snake, g.wrap(rules.Start.Add(Point{X: -i})))
	}

	g.spawnFood()
	g.intents = g.intents[:0]
	g.Redraw()
	return g, nil
}

// Level returns the level for a score: score/perLevel + 1 with Go integer
// division, which truncates toward zero for negative scores.
func Level(score, perLevel int) int {
	return score/perLevel + 1
}

// SetDirection requests a new heading. Unknown directions are ignored, as is
// every request once the game is over. Under ReversalBlock a request for the
// opposite of the current heading is ignored too.
func (g *Game) SetDirection(d Direction) {
	if g.phase == PhaseGameOver || !d.Valid() {
		return
	}
	if g.rules.Reversal == ReversalBlock && d == g.direction.Opposite() {
		return
	}
	g.direction = d
}

// Tick advances the simulation by one step and reports what happened.
func (g *Game) Tick() Result {
	if g.phase == PhaseGameOver {
		return ResultGameOver
	}
	g.tick++

	// Shift body toward the head, then move the head.
	tail := g.snake[len(g.snake)-1]
	for i := len(g.snake) - 1; i > 0; i-- {
		g.snake[i] = g.snake[i-1]
	}
	g.snake[0] = g.wrap(g.snake[0].Add(g.direction.Delta()))
	head := g.snake[0]

	// Erase the vacated tail before food is eaten, so a food respawned on
	// that cell is drawn after the erase. The obstacle can appear under the
	// body; repainting it keeps it visible.
	if g.obstacle[tail] {
		g.emit(drawCell(tail, ColorObstacle))
	} else {
		g.emit(drawCell(tail, ColorBackground))
	}

	result := ResultContinue
	if g.food != nil && head == g.food.Pos {
		result = g.consumeFood(tail)
	}

	if g.hitsSelf() || g.obstacle[head] {
		g.endGame()
		return ResultGameOver
	}
	g.emit(drawCell(head, ColorSnake))

	if g.food != nil && g.food.Timed {
		if g.now().Sub(g.food.SpawnedAt) >= g.rules.CountdownDeadline {
			g.expireFood()
		} else {
			g.drawHUD()
		}
	}

	return result
}

// consumeFood applies the effects of eating the current food. tail is the
// cell the tail vacated this tick; a normal food keeps it as the new tail.
func (g *Game) consumeFood(tail Point) Result {
	eaten := g.food
	g.food = nil

	result := ResultAteNormal
	switch eaten.Kind {
	case FoodHazard:
		g.score--
		result = ResultAteHazard
		g.sound(SoundHazard)
	default:
		g.score++
		g.foodEaten++
		if len(g.snake) < g.rules.Cells() {
			g.snake = append(g.snake, tail)
			g.emit(drawCell(tail, ColorSnake))
		}
		g.sound(SoundEat)
	}

	g.level = Level(g.score, g.rules.FoodPerLevel)
	if g.interval > g.rules.MinInterval {
		g.interval = max(g.interval-g.rules.IntervalStep, g.rules.MinInterval)
	}

	if g.rules.Obstacle && g.obstacle == nil && g.foodEaten >= g.rules.ObstacleTrigger {
		g.placeObstacle()
	}

	g.spawnFood()
	g.drawHUD()
	return result
}

// expireFood removes a timed food whose countdown ran out and spawns a new
// one. No score is awarded.
func (g *Game) expireFood() {
	g.emit(drawCell(g.food.Pos, ColorBackground))
	g.food = nil
	g.sound(SoundExpire)
	g.spawnFood()
	g.drawHUD()
}

// placeObstacle materializes the fixed obstacle layout.
func (g *Game) placeObstacle() {
	g.obstacle = make(map[Point]bool, len(g.rules.ObstacleLayout))
	for _, p := range g.rules.ObstacleLayout {
		g.obstacle[p] = true
		g.emit(drawCell(p, ColorObstacle))
	}
}

// spawnFood places a food on a uniformly random valid cell, resampling until
// one is found. When no valid cell exists the game is left without food.
func (g *Game) spawnFood() {
	var p Point
	for attempts := 1; ; attempts++ {
		p = P(g.rng.Intn(g.rules.Width), g.rng.Intn(g.rules.Height))
		if g.validFoodCell(p) {
			break
		}
		if attempts == g.rules.Cells() && !g.hasFreeCell() {
			g.food = nil
			return
		}
	}

	kind := FoodNormal
	if g.rules.Hazard && g.level >= g.rules.HazardLevel && g.rng.Intn(2) == 1 {
		kind = FoodHazard
	}

	g.food = &Food{
		Pos:       p,
		Kind:      kind,
		Timed:     g.rules.Countdown && g.level >= g.rules.CountdownLevel,
		SpawnedAt: g.now(),
	}
	g.emit(drawCell(p, foodColor(kind)))
}

// validFoodCell rejects snake cells and cells within the obstacle margin.
func (g *Game) validFoodCell(p Point) bool {
	if g.isSnakeAt(p) {
		return false
	}
	m := g.rules.ObstacleMargin
	for o := range g.obstacle {
		if core.Abs(p.X-o.X) <= m && core.Abs(p.Y-o.Y) <= m {
			return false
		}
	}
	return true
}

func (g *Game) hasFreeCell() bool {
	for y := range g.rules.Height {
		for x := range g.rules.Width {
			if g.validFoodCell(P(x, y)) {
				return true
			}
		}
	}
	return false
}

func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// hitsSelf reports whether the head shares a cell with any body segment.
func (g *Game) hitsSelf() bool {
	head := g.snake[0]
	for _, seg := range g.snake[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

func (g *Game) endGame() {
	g.phase = PhaseGameOver
	g.endGameBanner()
	g.sound(SoundGameOver)
}

// endGameBanner paints the terminal screen.
func (g *Game) endGameBanner() {
	g.emit(clearRegion(g.screenRect(), ColorGameOver))
	banner := "GAME OVER!"
	g.emit(drawText(P((g.rules.Width-len(banner)/2)/2, g.rules.Height/2), banner, 3, ColorText))
	g.emit(drawText(P(0, g.rules.Height), fmt.Sprintf("Score: %d  Level: %d", g.score, g.level), 2, ColorText))
}

// wrap maps p onto the torus.
func (g *Game) wrap(p Point) Point {
	return P(mod(p.X, g.rules.Width), mod(p.Y, g.rules.Height))
}

func (g *Game) emit(in Intent) {
	g.intents = append(g.intents, in)
}

func (g *Game) sound(s Sound) {
	if g.rules.Sound {
		g.emit(playSound(s))
	}
}

func foodColor(k FoodKind) core.Color {
	if k == FoodHazard {
		return ColorHazard
	}
	return ColorFood
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
