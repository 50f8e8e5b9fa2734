// Package cli renders themed terminal output shared by the commands.
package cli

import (
	"fmt"
	"strings"

	"shelf/internal/config"
)

// ColorTheme is a palette resolved into ANSI escape codes.
type ColorTheme struct {
	Name       string
	Success    string
	Error      string
	Warning    string
	Info       string
	Header     string
	Logo       string
	BoxOutline string
	Highlight  string
}

// Terminal escape codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
)

// ansi256 turns a 256 color palette index into its escape code.
func ansi256(code string) string {
	return "\033[38;5;" + code + "m"
}

// FromConfig resolves the palette configured in cfg into escape codes.
func FromConfig(cfg *config.Config) ColorTheme {
	return ColorTheme{
		Name:       cfg.Theme.Name,
		Success:    ansi256(cfg.Theme.Success),
		Error:      ansi256(cfg.Theme.Error),
		Warning:    ansi256(cfg.Theme.Warning),
		Info:       ansi256(cfg.Theme.Info),
		Header:     ansi256(cfg.Theme.Primary) + colorBold,
		Logo:       ansi256(cfg.Theme.Primary),
		BoxOutline: ansi256(cfg.Theme.Border),
		Highlight:  ansi256(cfg.Theme.Emphasis),
	}
}

// Current active theme, starts with the default palette
var CurrentTheme = FromConfig(config.New())

// Apply makes cfg's palette the active one.
func Apply(cfg *config.Config) {
	CurrentTheme = FromConfig(cfg)
}

// Sample renders a theme's name in that theme's own header color.
func Sample(name string) string {
	c := config.New()
	c.ApplyTheme(name)
	return FromConfig(c).Header + name + colorReset
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(CurrentTheme.Success + "✓ " + message + colorReset)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println(CurrentTheme.Warning + "! " + message + colorReset)
}

// PrintInfo prints an informational message
func PrintInfo(message string) {
	fmt.Println(CurrentTheme.Info + "ℹ " + message + colorReset)
}

// DrawBox creates a colored box around content
func DrawBox(content, color string) string {
	lines := strings.Split(content, "\n")
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	result := color + "┌" + strings.Repeat("─", maxLen+2) + "┐\n"
	for _, line := range lines {
		result += "│ " + line + strings.Repeat(" ", maxLen-len(line)) + " │\n"
	}
	result += "└" + strings.Repeat("─", maxLen+2) + "┘" + colorReset

	return result
}

// DrawBoxWithTheme creates a colored box using the current theme
func DrawBoxWithTheme(content string) string {
	return DrawBox(content, CurrentTheme.BoxOutline)
}

// DrawLogo generates the ASCII art logo for shelf.
func DrawLogo() string {
	logo := `
::'######::'##::::'##:'########:'##:::::::'########:
'##... ##:: ##:::: ##: ##.....:: ##::::::: ##.....::
'##:::..::: ##:::: ##: ##::::::: ##::::::: ##:::::::
. ######::: #########: ######::: ##::::::: ######:::
:..... ##:: ##.... ##: ##...:::: ##::::::: ##...::::
'##::: ##:: ##:::: ##: ##::::::: ##::::::: ##:::::::
. ######::: ##:::: ##: ########: ########: ##:::::::
:......::::..:::::..::........::........::..::::::::
`

	return CurrentTheme.Logo + logo + colorReset
}
