package theme

import "github.com/charmbracelet/x/ansi"

// Styles describes the markers wrapped around highlighted menu entries.
type Styles struct {
	// Selected is written immediately before the selected entry's text.
	Selected string
	// Reset is written immediately after it.
	Reset string
}

var defaultStyles = Styles{
	Selected: ansi.Style{}.Bold().String(),
	Reset:    ansi.ResetStyle,
}

// Default exposes the standard style set: bold selection, SGR reset.
func Default() Styles {
	return defaultStyles
}

// WithSelected returns the default styles with a custom selection prefix.
// An empty prefix keeps the default.
func WithSelected(prefix string) Styles {
	s := defaultStyles
	if prefix != "" {
		s.Selected = prefix
	}
	return s
}

// Widths returns the visible cell widths of the selection markers, ignoring
// escape sequences.
func (s Styles) Widths() (selected, reset int) {
	return ansi.StringWidth(s.Selected), ansi.StringWidth(s.Reset)
}
