// Package tui holds the interactive confirmation dialog shown before files
// are moved.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmKeyMap defines the keybindings of the confirmation dialog.
type ConfirmKeyMap struct {
	Accept key.Binding
	Cancel key.Binding
}

// DefaultConfirmKeys returns the standard yes or no bindings.
func DefaultConfirmKeys() ConfirmKeyMap {
	return ConfirmKeyMap{
		Accept: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y/enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc", "q", "ctrl+c"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// ConfirmModel is a yes or no prompt rendered above a short preview of what
// is about to happen.
type ConfirmModel struct {
	title    string
	lines    []string
	keys     ConfirmKeyMap
	accepted bool
	answered bool
}

// NewConfirm creates a confirmation dialog showing title above the preview
// lines.
func NewConfirm(title string, lines []string) *ConfirmModel {
	return &ConfirmModel{
		title: title,
		lines: lines,
		keys:  DefaultConfirmKeys(),
	}
}

// Accepted reports whether the user answered yes.
func (m *ConfirmModel) Accepted() bool {
	return m.answered && m.accepted
}

// Init implements tea.Model
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			m.answered = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.accepted = false
			m.answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")
	for _, line := range m.lines {
		b.WriteString(StatusStyle.Render("  " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(PromptStyle.Render(fmt.Sprintf("[%s] / [%s]",
		m.keys.Accept.Help().Key, m.keys.Cancel.Help().Key)))

	return App.Render(b.String())
}

// Confirm shows the dialog and blocks until the user answers. It reports
// whether the user accepted.
func Confirm(title string, lines []string) (bool, error) {
	p := tea.NewProgram(NewConfirm(title, lines))
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	model, ok := final.(*ConfirmModel)
	if !ok {
		return false, nil
	}
	return model.Accepted(), nil
}
