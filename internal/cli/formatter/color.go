// Package formatter renders OptimizeResponse values for a terminal, in the
// same gruvbox-palette lipgloss style the teacher's kairos CLI uses for its
// own status/review output.
package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/shiftopt/dayplan/internal/domain"
)

// Gruvbox-inspired color palette, carried over from the teacher's CLI.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ActivityTypeStyle colors a schedule entry's activityType label: breaks
// read in blue and blocked time as dim, everything else as the normal
// foreground, so a glance at the table separates "your work" from
// "the day's fixed scaffolding".
func ActivityTypeStyle(activityType string) lipgloss.Style {
	switch activityType {
	case "Break":
		return StyleBlue
	case "Blocked":
		return StyleDim
	default:
		return StyleFg
	}
}

// ReasonStyle colors an unachievable-item reason code by how actionable it
// is: a caller can usually fix MalformedInput/MissingIdentifier themselves,
// while the rest reflect a genuinely full day.
func ReasonStyle(reason string) lipgloss.Style {
	switch domain.UnachievableReason(reason) {
	case domain.ReasonMalformedInput, domain.ReasonMissingIdentifier:
		return StyleYellow
	default:
		return StyleRed
	}
}
