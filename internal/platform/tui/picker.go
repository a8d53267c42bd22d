package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerItem is one selectable row.
type PickerItem struct {
	Name        string
	Description string
}

// PickerKeyMap defines the key bindings for the variant picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel lets the user choose a variant from a table.
type PickerModel struct {
	items    []PickerItem
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	selected int
	quitting bool
}

// NewPickerModel creates a picker over items with the cursor on the
// item named current.
func NewPickerModel(items []PickerItem, current string, width, height int) PickerModel {
	nameWidth := 10
	for _, it := range items {
		nameWidth = max(nameWidth, len(it.Name)+2)
	}
	columns := []table.Column{
		{Title: "Variant", Width: nameWidth},
		{Title: "Rules", Width: max(width-nameWidth-8, 30)},
	}

	rows := make([]table.Row, len(items))
	cursor := 0
	for i, it := range items {
		rows[i] = table.Row{it.Name, it.Description}
		if it.Name == current {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(items)+1, max(height-6, 3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(cursor)

	return PickerModel{
		items:    items,
		table:    t,
		help:     help.New(),
		keys:     DefaultPickerKeyMap(),
		width:    width,
		selected: -1,
	}
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			m.selected = m.table.Cursor()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		titleStyle.Render("  Choose a variant"),
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}

// Selected returns the chosen item name, or "" when nothing was chosen.
func (m PickerModel) Selected() string {
	if m.selected < 0 || m.selected >= len(m.items) {
		return ""
	}
	return m.items[m.selected].Name
}

// RunPicker shows the picker and returns the chosen name, or "" if the
// user quit.
func RunPicker(items []PickerItem, current string, width, height int) (string, error) {
	p := tea.NewProgram(NewPickerModel(items, current, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(PickerModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
