package snake

import "github.com/vovakirdan/joysnake/internal/games/snake/sim"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	sim.Snapshot
	Steps   uint64 // Ticks driven by this adapter since the last reset
	Paused  bool
	Presses uint64 // Button presses since the game was created
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Snapshot: g.sim.Snapshot(),
		Steps:    g.steps,
		Paused:   g.paused,
		Presses:  g.button.Presses(),
	}
}
