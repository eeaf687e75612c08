// Package tui holds the terminal presentation bits shared by the portkit
// commands: the kill confirmation prompt, styles and the launch banner.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a one-question prompt. Only the affirmative key proceeds;
// every other key answers no.
type confirmModel struct {
	question string
	answer   bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Confirm):
			m.answer = true
		default:
			m.answer = false
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	return confirmStyle.Render(m.question+" (y/n)") + "\n"
}

// Confirm blocks until the operator answers the question with a single
// keypress. It returns false on any answer other than the affirmative key
// and on prompt failure.
func Confirm(question string) bool {
	p := tea.NewProgram(confirmModel{question: question})
	m, err := p.Run()
	if err != nil {
		return false
	}
	return m.(confirmModel).answer
}
