package reelsui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the reels viewer. Colors are ANSI 256
// codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	Author lipgloss.Color
	Grade  lipgloss.Color
	Liked  lipgloss.Color
	Saved  lipgloss.Color

	Playing lipgloss.Color
	Paused  lipgloss.Color

	Notice     lipgloss.Color
	HelpText   lipgloss.Color
	BorderLine lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("243"),

	Author: lipgloss.Color("117"),
	Grade:  lipgloss.Color("214"),
	Liked:  lipgloss.Color("204"),
	Saved:  lipgloss.Color("220"),

	Playing: lipgloss.Color("84"),
	Paused:  lipgloss.Color("240"),

	Notice:     lipgloss.Color("196"),
	HelpText:   lipgloss.Color("241"),
	BorderLine: lipgloss.Color("238"),
}
