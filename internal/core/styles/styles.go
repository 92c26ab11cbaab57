// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	SuccessStyle       lipgloss.Style
	InfoStyle          lipgloss.Style
	WarnStyle          lipgloss.Style
	ErrorStyle         lipgloss.Style
	DividerStyle       lipgloss.Style

	// Text.
	TextForegroundStyle lipgloss.Style
	TextMutedStyle      lipgloss.Style
	TextPrimaryStyle    lipgloss.Style

	// Tabs and chrome.
	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style
	HeaderStyle      lipgloss.Style
	HelpStyle        lipgloss.Style

	// Form fields. The wrapper style follows the field's validation state.
	FormTitleStyle        lipgloss.Style
	FormTitleValidStyle   lipgloss.Style
	FormTitleErrorStyle   lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormFieldValidStyle   lipgloss.Style
	FormFieldErrorStyle   lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	SelectFieldItemSelectedStyle lipgloss.Style

	ButtonStyle        lipgloss.Style
	ButtonFocusedStyle lipgloss.Style

	CounterValidStyle lipgloss.Style
	CounterErrorStyle lipgloss.Style

	NotificationStyle lipgloss.Style

	// Project cards.
	CardStyle         lipgloss.Style
	CardTitleStyle    lipgloss.Style
	CardBodyStyle     lipgloss.Style
	TechPillStyle     lipgloss.Style
	LinkStyle         lipgloss.Style
	FilterActiveStyle lipgloss.Style
	FilterNormalStyle lipgloss.Style
)

// ColorPool is used for deterministic color hashing of category names.
var ColorPool []lipgloss.Color

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	InfoStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	WarnStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	TabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleValidStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	FormTitleErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = FormFieldStyle.
		BorderForeground(ColorPrimary)
	FormFieldValidStyle = FormFieldStyle.
		BorderForeground(ColorSuccess)
	FormFieldErrorStyle = FormFieldStyle.
		BorderForeground(ColorError)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	SelectFieldItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ButtonFocusedStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	CounterValidStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	CounterErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	NotificationStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Foreground(ColorSuccess).
		Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	CardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	CardBodyStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TechPillStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Padding(0, 1)
	LinkStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)
	FilterActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true)
	FilterNormalStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ColorPool = []lipgloss.Color{
		ColorPrimary,
		ColorSecondary,
		ColorSuccess,
		ColorWarning,
		ColorError,
	}
}

// ColorForString returns a deterministic color for a given string.
// The same string always produces the same color.
func ColorForString(s string) lipgloss.Color {
	var hash uint32
	for _, c := range s {
		hash = hash*31 + uint32(c)
	}
	return ColorPool[hash%uint32(len(ColorPool))]
}

// CategoryBadgeStyle returns the badge style for a project category.
func CategoryBadgeStyle(category string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorForString(category)).
		Bold(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
