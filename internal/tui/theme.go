package tui

import (
	"github.com/charmbracelet/huh"
)

// NewHuhTheme returns the huh theme used by interactive prompts, matching
// the lipgloss styles in this package.
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeBase()

	theme.Focused.Title = TitleStyle
	theme.Focused.SelectedOption = SelectedStyle
	theme.Focused.SelectSelector = SelectedStyle.SetString("> ")
	theme.Blurred.Title = SubtleStyle
	theme.Help.ShortKey = HelpStyle
	theme.Help.ShortDesc = SubtleStyle

	return theme
}
