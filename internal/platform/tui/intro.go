package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleIntroKey dismisses the intro. Quit keys still quit.
func (m Model) handleIntroKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, isQuit := m.keyMapper.MapKey(msg); isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.intro = false
	return m, tickAfter(m.game.TickInterval())
}

func (m Model) viewIntro() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("J O Y S N A K E"), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.game.Title(), m.config.ScreenW))
	b.WriteString("\n")
	if m.opts.Variant != "" {
		b.WriteString(centerText(dimStyle.Render("variant: "+m.opts.Variant), m.config.ScreenW))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	controls := m.help
	controls.ShowAll = true
	b.WriteString(centerText(controls.View(m.keyMapper.Keys()), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText("Press any key to start  |  Q: Quit", m.config.ScreenW))

	return b.String()
}

// centerText centers text, or a multi-line block as a unit, within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
