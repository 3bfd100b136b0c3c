package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one selectable entry in the main menu. Action is the
// opaque key handed back to the CLI dispatcher.
type MenuItem struct {
	Label  string
	Action string
}

// MenuModel is the bubbletea model for the main menu. It resolves to a
// single chosen action (or "" when the user quits).
type MenuModel struct {
	title  string
	items  []MenuItem
	cursor int
	choice string
	theme  Theme
}

// NewMenu builds a menu model over the given items.
func NewMenu(title string, items []MenuItem, th Theme) MenuModel {
	return MenuModel{title: title, items: items, theme: th}
}

// Choice returns the selected action after the program has finished.
func (m MenuModel) Choice() string {
	return m.choice
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.choice = m.items[m.cursor].Action
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.choice = ""
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	s := m.theme.Title.Render(m.title) + "\n\n"
	for i, item := range m.items {
		if i == m.cursor {
			s += m.theme.Selected.Render(fmt.Sprintf("> %s", item.Label)) + "\n"
		} else {
			s += fmt.Sprintf("  %s\n", item.Label)
		}
	}
	s += "\n" + m.theme.Muted.Render("up/down to move, enter to select, q to quit") + "\n"
	return s
}

// RunMenu shows the menu and returns the chosen action, or "" when the
// user backed out.
func RunMenu(title string, items []MenuItem, th Theme) (string, error) {
	model, err := tea.NewProgram(NewMenu(title, items, th)).Run()
	if err != nil {
		return "", fmt.Errorf("menu failed: %w", err)
	}
	final, ok := model.(MenuModel)
	if !ok {
		return "", nil
	}
	return final.Choice(), nil
}
