package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The dark palette is lifted from the original handheld build (dark gray
// surface, light gray text, white highlight, medium gray chrome); the
// light variants keep the TUI readable on light terminal backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorText      = ac("235", "#E0E0E0")
	colorHighlight = ac("232", "#FFFFFF")
	colorChrome    = ac("245", "#A0A0A0")
	colorMuted     = ac("240", "243")
)

var (
	styleAppTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorChrome)
	styleNoteTitle = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	styleText      = lipgloss.NewStyle().Foreground(colorText)
	styleSelected  = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	styleMuted     = lipgloss.NewStyle().Foreground(colorMuted)
	styleHelp      = lipgloss.NewStyle().Faint(true)
	stylePromptBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorChrome).
			Padding(0, 1)
)

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is
// useful for non-interactive output but can accidentally disable colors in
// a TUI. Here we only honor NO_COLOR and otherwise follow the terminal's
// capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If COLORTERM indicates stronger support than the detector reports,
	// trust the env. Color probing under-reports on some terminals.
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	}

	lipgloss.SetColorProfile(profile)
}
