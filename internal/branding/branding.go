// Package branding centralizes pokefetch identity constants and the lipgloss
// styles used by CLI summaries.
package branding

import "github.com/charmbracelet/lipgloss"

// Application identity constants.
const (
	AppName    = "pokefetch"
	CLIName    = "pokefetch"
	BinaryName = "pokefetch"
)

// Brand colors in hex format for Lipgloss true color support.
const (
	// ColorPrimary is the main brand color (Pokédex red).
	ColorPrimary = "#E3350D"
	// ColorAccent is the secondary brand color (Pikachu yellow).
	ColorAccent = "#FFCB05"
	// ColorWhite is pure white.
	ColorWhite = "#FFFFFF"
	// ColorLightGray is a light gray for labels.
	ColorLightGray = "#A1A1AA"
	// ColorMutedGray is a muted gray for help text.
	ColorMutedGray = "#71717A"
	// ColorCoral is the error color.
	ColorCoral = "#E11D48"
)

// Label and value styles for key-value summaries.
var (
	// TitleStyle formats section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorPrimary)).
			Padding(0, 1)

	// LabelStyle formats labels in key-value displays.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorLightGray)).
			Width(16)

	// ValueStyle formats values in key-value displays.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite))

	// HelpStyle renders hints below a summary.
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMutedGray))

	// OKStyle marks available binaries.
	OKStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true)

	// MissingStyle marks missing binaries.
	MissingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCoral)).
			Bold(true)
)

// Row renders one "label  value" line.
func Row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

// Swatch renders a small block filled with the given #rrggbb color.
func Swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("      ")
}
