package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/joysnake/internal/core"
)

// fakeGame records what the model does to it.
type fakeGame struct {
	resets   int
	steps    []core.InputFrame
	resized  [2]int
	interval time.Duration
	state    core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake Game" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) TickInterval() time.Duration { return g.interval }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "board") }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state, Moved: true}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(opts Options) (Model, *fakeGame) {
	g := &fakeGame{interval: 150 * time.Millisecond}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, opts)
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	_, g := newTestModel(Options{})
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestKeysReachNextTick(t *testing.T) {
	m, g := newTestModel(Options{})

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.steps) != 1 {
		t.Fatalf("steps = %d, expected 1", len(g.steps))
	}
	in := g.steps[0]
	if !in.Has(core.ActionUp) || !in.Has(core.ActionLeft) || in.Last != core.ActionLeft {
		t.Errorf("frame = %+v, expected up+left with left last", in)
	}

	update(t, m, TickMsg(time.Now()))
	if len(g.steps[1].Actions) != 0 {
		t.Errorf("second frame = %+v, expected cleared", g.steps[1])
	}
}

func TestQuitKey(t *testing.T) {
	m, g := newTestModel(Options{})
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
	if len(g.steps) != 0 {
		t.Error("quit should not step the game")
	}
}

func TestResizeDoesNotReset(t *testing.T) {
	m, g := newTestModel(Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected resize to keep the game", g.resets)
	}
	if g.resized != [2]int{120, 40} {
		t.Errorf("resized = %v, expected [120 40]", g.resized)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestIntroWaitsForKey(t *testing.T) {
	m, g := newTestModel(Options{Intro: true, Variant: "deluxe"})

	if m.Init() != nil {
		t.Error("intro should not start ticking")
	}
	view := m.View()
	if !strings.Contains(view, "Fake Game") || !strings.Contains(view, "deluxe") {
		t.Errorf("intro view missing title or variant:\n%s", view)
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if len(g.steps) != 0 {
		t.Error("ticks during the intro should be ignored")
	}

	m, cmd := update(t, m, runeKey('x'))
	if cmd == nil || m.intro {
		t.Fatal("any key should dismiss the intro and start ticking")
	}
	if len(g.steps) != 0 {
		t.Error("dismiss key should not reach the game")
	}
	if !strings.Contains(m.View(), "board") {
		t.Error("after the intro the board should render")
	}
}

func TestIntroQuit(t *testing.T) {
	m, _ := newTestModel(Options{Intro: true})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit from the intro")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(Options{})
	short := m.View()
	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand help")
	}
	if len(m.View()) <= len(short) {
		t.Error("full help should be longer than short help")
	}
}

func TestViewIncludesHelp(t *testing.T) {
	m, _ := newTestModel(Options{})
	view := m.View()
	if !strings.Contains(view, "board") || !strings.Contains(view, "pause") {
		t.Errorf("view = %q, expected board and help line", view)
	}
}
