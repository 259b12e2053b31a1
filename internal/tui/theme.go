package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorCrust).
			Background(colorMauve).
			Bold(true).
			Padding(0, 1)

	headerUserStyle = lipgloss.NewStyle().
			Foreground(colorLavender).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	flashStyle = lipgloss.NewStyle().
			Foreground(colorCrust).
			Background(colorGreen).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorPeach).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Background(colorBase).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Background(colorSurface0).
			Padding(0, 1)

	savingStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	resultAuthorStyle = lipgloss.NewStyle().
				Foreground(colorTeal)
)
