package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/toast/internal/thermal"
)

// TimestampLayout is the clock format used on change lines.
const TimestampLayout = "15:04:05"

// LabelStyle returns the style for a pressure level name. Severity rises
// from green through yellow and red to magenta; the two worst levels are
// also underlined.
func LabelStyle(p thermal.Pressure) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch p {
	case thermal.Nominal:
		return base.Foreground(ColorSuccess)
	case thermal.Moderate:
		return base.Foreground(ColorWarning)
	case thermal.Heavy:
		return base.Foreground(ColorError)
	case thermal.Trapping:
		return base.Foreground(ColorError).Underline(true)
	case thermal.Sleeping:
		return base.Foreground(ColorCritical).Underline(true)
	default:
		return DimStyle()
	}
}

// ColumnStyle returns the style for a chart column of the given level.
func ColumnStyle(p thermal.Pressure) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch p {
	case thermal.Nominal:
		return style.Foreground(ColorPrimary)
	case thermal.Moderate:
		return style.Foreground(ColorWarning)
	case thermal.Heavy, thermal.Trapping:
		return style.Foreground(ColorError)
	case thermal.Sleeping:
		return style.Foreground(ColorCritical)
	default:
		return style.Foreground(ColorPrimary).Faint(true)
	}
}

// DimStyle is used for timestamps, descriptions and countdowns.
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}

// Dim renders s with DimStyle.
func Dim(s string) string {
	return DimStyle().Render(s)
}

// ColoredLabel renders the level's display name with its LabelStyle.
func ColoredLabel(p thermal.Pressure) string {
	return LabelStyle(p).Render(p.String())
}

// Timestamp renders t as a dimmed HH:MM:SS clock.
func Timestamp(t time.Time) string {
	return Dim(t.Format(TimestampLayout))
}

// ChangeLine renders the line printed when the observed level changes:
//
//	12:00:01 Heavy (System is actively throttling)
func ChangeLine(t time.Time, p thermal.Pressure) string {
	return Timestamp(t) + " " + ColoredLabel(p) + " " + Dim("("+p.Description()+")")
}

// WatchBanner is printed to stderr when watch mode starts.
func WatchBanner() string {
	return lipgloss.NewStyle().Foreground(ColorSuccess).Render("Watching thermal pressure") +
		" " + Dim("(Ctrl+C to stop)")
}

// ErrorSymbol renders SymbolFail in the error colour.
func ErrorSymbol() string {
	return lipgloss.NewStyle().Foreground(ColorError).Render(SymbolFail)
}

// Hint renders secondary help text in the muted colour.
func Hint(s string) string {
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(s)
}
