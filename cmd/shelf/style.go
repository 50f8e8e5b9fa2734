package main

import (
	"github.com/charmbracelet/lipgloss"

	"shelf/internal/config"
)

// activeTheme returns the configured palette, or the defaults when no config
// has been loaded yet.
func activeTheme() *config.Config {
	if cfg != nil {
		return cfg
	}
	return config.New()
}

func styled(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

func successText(s string) string {
	return styled(activeTheme().Theme.Success).Render(s)
}

func errorText(s string) string {
	return styled(activeTheme().Theme.Error).Render(s)
}

func warningText(s string) string {
	return styled(activeTheme().Theme.Warning).Render(s)
}

func infoText(s string) string {
	return styled(activeTheme().Theme.Info).Render(s)
}

func primaryText(s string) string {
	return styled(activeTheme().Theme.Primary).Render(s)
}

func emphasisText(s string) string {
	return styled(activeTheme().Theme.Emphasis).Render(s)
}

func bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
