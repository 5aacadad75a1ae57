package ui

import (
	"github.com/RyanBlaney/nashville/transpose"
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Foreground = lipgloss.Color("#f2f2f2")
	Muted      = lipgloss.Color("#6b7a90")
	Primary    = lipgloss.Color("#8BC34A") // Lime Green
	Accent     = lipgloss.Color("#101F38") // Dark Blue
	ChordColor = lipgloss.Color("#ffd54f") // Yellow
	Danger     = lipgloss.Color("#e53935")
)

// Styles holds all the styled components
type Styles struct {
	Title       lipgloss.Style
	Key         lipgloss.Style
	SelectedKey lipgloss.Style
	Chord       lipgloss.Style
	Content     lipgloss.Style
	Footer      lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles returns the viewer styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginRight(2),
		Key: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1),
		SelectedKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent).
			Background(Primary).
			Padding(0, 1),
		Chord: lipgloss.NewStyle().
			Bold(true).
			Foreground(ChordColor),
		Content: lipgloss.NewStyle().
			Foreground(Foreground),
		Footer: lipgloss.NewStyle().
			Foreground(Muted),
		Error: lipgloss.NewStyle().
			Foreground(Danger),
	}
}

// ANSIRenderer renders chords with the Chord style for terminal output.
func ANSIRenderer(styles Styles) transpose.Renderer {
	return func(chord transpose.ResolvedChord) string {
		return styles.Chord.Render(chord.Symbol())
	}
}
