package transpose

import "html"

// Renderer formats a resolved chord for display. It is the only
// presentation hook in the engine.
type Renderer func(chord ResolvedChord) string

// DefaultChordClass is the CSS class used by the default HTML renderer.
const DefaultChordClass = "chord"

// HTMLRenderer wraps chords in <span class="...">. An empty class uses DefaultChordClass.
func HTMLRenderer(class string) Renderer {
	if class == "" {
		class = DefaultChordClass
	}
	open := `<span class="` + html.EscapeString(class) + `">`
	return func(chord ResolvedChord) string {
		return open + html.EscapeString(chord.Symbol()) + "</span>"
	}
}

// PlainRenderer emits the bare chord symbol.
func PlainRenderer(chord ResolvedChord) string {
	return chord.Symbol()
}

// BracketRenderer wraps chords in square brackets, as in ChordPro sources.
func BracketRenderer(chord ResolvedChord) string {
	return "[" + chord.Symbol() + "]"
}
