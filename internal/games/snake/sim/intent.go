package sim

import "github.com/vovakirdan/joysnake/internal/core"

// Renderer draws on a cell-addressed display. Positions are in cells.
type Renderer interface {
	DrawCell(p Point, c core.Color)
	ClearRegion(r core.Rect, c core.Color)
	DrawText(p Point, text string, size int, c core.Color)
}

// Speaker plays feedback sounds.
type Speaker interface {
	Play(s Sound)
}

// Sound identifies a feedback tone.
type Sound int

const (
	SoundEat Sound = iota
	SoundHazard
	SoundExpire
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundHazard:
		return "hazard"
	case SoundExpire:
		return "expire"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// IntentKind is the type of a collected intent.
type IntentKind int

const (
	IntentDrawCell IntentKind = iota
	IntentClearRegion
	IntentDrawText
	IntentSound
)

// Intent is one render or audio request produced by the simulation.
// Only the fields relevant to Kind are set.
type Intent struct {
	Kind  IntentKind
	Pos   Point     // DrawCell cell, DrawText anchor
	Rect  core.Rect // ClearRegion area in cells
	Color core.Color
	Text  string
	Size  int
	Sound Sound
}

// Palette used by the simulation when reporting draws.
const (
	ColorBackground = core.ColorBlack
	ColorSnake      = core.ColorGreen
	ColorFood       = core.ColorRed
	ColorHazard     = core.ColorMagenta
	ColorObstacle   = core.ColorBlue
	ColorText       = core.ColorWhite
	ColorTimer      = core.ColorYellow
	ColorGameOver   = core.ColorRed
)

// Apply executes intents in order. Either sink may be nil.
func Apply(intents []Intent, r Renderer, s Speaker) {
	for _, in := range intents {
		switch in.Kind {
		case IntentDrawCell:
			if r != nil {
				r.DrawCell(in.Pos, in.Color)
			}
		case IntentClearRegion:
			if r != nil {
				r.ClearRegion(in.Rect, in.Color)
			}
		case IntentDrawText:
			if r != nil {
				r.DrawText(in.Pos, in.Text, in.Size, in.Color)
			}
		case IntentSound:
			if s != nil {
				s.Play(in.Sound)
			}
		}
	}
}

func drawCell(p Point, c core.Color) Intent {
	return Intent{Kind: IntentDrawCell, Pos: p, Color: c}
}

func clearRegion(r core.Rect, c core.Color) Intent {
	return Intent{Kind: IntentClearRegion, Rect: r, Color: c}
}

func drawText(p Point, text string, size int, c core.Color) Intent {
	return Intent{Kind: IntentDrawText, Pos: p, Text: text, Size: size, Color: c}
}

func playSound(s Sound) Intent {
	return Intent{Kind: IntentSound, Sound: s}
}
