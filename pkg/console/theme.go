package console

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for the console reporter.
type Theme struct {
	Name    string
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass   string
	Fail   string
	Skip   string
	Bullet string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),            // green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),           // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),           // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),           // gray
		Icons: ThemeIcons{
			Pass:   "✓",
			Fail:   "✗",
			Skip:   "○",
			Bullet: "·",
		},
	}
}

// MonoTheme returns an uncolored, ASCII-only theme for pipes and dumb
// terminals.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:    "mono",
		Header:  plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Muted:   plain,
		Icons: ThemeIcons{
			Pass:   "+",
			Fail:   "x",
			Skip:   "-",
			Bullet: "*",
		},
	}
}

// ThemeByName resolves a theme name from configuration or flags. Unknown
// names fall back to the default theme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
