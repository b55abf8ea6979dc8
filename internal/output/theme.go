// Package output renders an evaluation decision for a human: a colored,
// boxed denial or warning written to stderr, sized to the terminal and
// falling back to a plain ASCII box when color or Unicode aren't available.
// It never touches the hook JSON body (internal/hookio owns that); this is
// purely the presentation layer a human watching the session sees.
package output

import "github.com/charmbracelet/lipgloss"

// Palette is a Catppuccin Mocha slice, matching the severity tiers used
// throughout the bundled packs.
type Palette struct {
	Critical lipgloss.Color
	High     lipgloss.Color
	Medium   lipgloss.Color
	Low      lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Text     lipgloss.Color
	Base     lipgloss.Color
}

// Mocha is dcg's default palette.
var Mocha = Palette{
	Critical: lipgloss.Color("#f38ba8"),
	High:     lipgloss.Color("#fab387"),
	Medium:   lipgloss.Color("#f9e2af"),
	Low:      lipgloss.Color("#a6e3a1"),
	Accent:   lipgloss.Color("#89b4fa"),
	Muted:    lipgloss.Color("#6c7086"),
	Text:     lipgloss.Color("#cdd6f4"),
	Base:     lipgloss.Color("#1e1e2e"),
}

// styles bundles the lipgloss.Style set derived from a Palette, built once
// per Renderer rather than re-constructed per call.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	command lipgloss.Style
	box     lipgloss.Style
}

// newStyles builds the style bundle through rnd so its color profile
// (set by the caller from colorEnabled) governs every style: a renderer
// pinned to termenv.Ascii emits plain text even though the styles below
// request color.
func newStyles(rnd *lipgloss.Renderer, p Palette, severityColor lipgloss.Color) styles {
	return styles{
		title: rnd.NewStyle().Bold(true).Foreground(severityColor),
		label: rnd.NewStyle().Bold(true).Foreground(p.Accent),
		muted: rnd.NewStyle().Foreground(p.Muted),
		command: rnd.NewStyle().Foreground(p.Text).
			Background(p.Base).Padding(0, 1),
		box: rnd.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(severityColor).
			Padding(1, 2),
	}
}

// severityColor maps a core.Severity string to the palette slot matching
// the pack tiers bundled in internal/core/packs_*.go.
func (p Palette) severityColor(severity string) lipgloss.Color {
	switch severity {
	case "critical":
		return p.Critical
	case "high":
		return p.High
	case "medium":
		return p.Medium
	case "low":
		return p.Low
	default:
		return p.Accent
	}
}

// asciiBorder is used in place of RoundedBorder when the terminal doesn't
// advertise UTF-8 support, avoiding mangled box-drawing characters over a
// dumb terminal or a non-UTF-8 locale.
var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}
