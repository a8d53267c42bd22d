package snake

import (
	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake/sim"
)

// CellWidth is the number of terminal columns per grid cell. Two columns
// make a cell roughly square in most fonts.
const CellWidth = 2

const (
	blockRune = '█'
	shadeRune = '░'
)

// Canvas is a persistent character display driven by render intents. Like
// the panel it stands in for, it only changes where an intent draws.
type Canvas struct {
	screen *core.Screen
}

// NewCanvas creates a blank canvas for a w x h cell grid plus HUD rows.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{screen: core.NewScreen(w*CellWidth, h+sim.HUDRows)}
}

// Screen returns the backing buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// DrawCell paints one grid cell. The background color erases it.
func (c *Canvas) DrawCell(p sim.Point, color core.Color) {
	r := blockRune
	if color == sim.ColorBackground {
		r = ' '
	}
	for i := 0; i < CellWidth; i++ {
		c.screen.SetColor(p.X*CellWidth+i, p.Y, r, color)
	}
}

// ClearRegion fills a rectangle of cells. Non-background fills are shaded
// so text drawn over them stays readable.
func (c *Canvas) ClearRegion(rect core.Rect, color core.Color) {
	r := shadeRune
	if color == sim.ColorBackground {
		r = ' '
	}
	c.screen.FillRect(core.NewRect(rect.X*CellWidth, rect.Y, rect.W*CellWidth, rect.H), r, color)
}

// DrawText writes text starting at a cell. Terminals have one glyph size,
// so size is ignored.
func (c *Canvas) DrawText(p sim.Point, text string, _ int, color core.Color) {
	c.screen.DrawTextColor(p.X*CellWidth, p.Y, text, color)
}
