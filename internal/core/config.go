package core

// RuntimeConfig is what the platform tells a game when it (re)starts it.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in columns
	ScreenH int   // Terminal height in rows
	Seed    int64 // RNG seed; 0 lets the platform pick one from the clock
}

// GameState is the summary the platform reads after each step.
type GameState struct {
	Score    int
	Level    int
	Length   int // Snake length in cells
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	Moved bool // False when the step was swallowed by pause, restart or game over
}
