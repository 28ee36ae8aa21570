package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color usage in the command layer.
var (
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
	ColorCyan   = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	ColorWhite  = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
)

// Reusable styles.
var (
	// StyleHighlight is for the selected row and active labels.
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StylePrice is for currency amounts.
	StylePrice = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleHelp is for help text and hints.
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader is for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleStatus is for the loyalty tier badge.
	StyleStatus = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// StyleBorder wraps full screens.
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)
