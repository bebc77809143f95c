package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/sdmenu/internal/logging/events"
	"github.com/atomicstack/sdmenu/internal/terminal"
	"github.com/atomicstack/sdmenu/internal/theme"
	"github.com/atomicstack/sdmenu/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	tokenSeparator = " "
	lineBreak      = "\r\n"
)

// Geometry describes the space a frame may occupy.
type Geometry struct {
	// Columns is the terminal width.
	Columns int
	// Width caps the wrap width; 0 means the terminal width.
	Width int
	// Lines caps the number of token rows; 0 means unlimited.
	Lines int
}

// WrapWidth returns min(Width, Columns) with degenerate values replaced.
func (g Geometry) WrapWidth() int {
	cols := terminal.NormalizeColumns(g.Columns)
	if g.Width > 0 && g.Width < cols {
		return g.Width
	}
	return cols
}

// Frame is one rendered screen: the query line followed by token rows.
type Frame struct {
	Text      string
	Rows      int
	QueryRows int
	Width     int
	Columns   int
}

// UsedRows is the number of token rows beyond the first one.
func (f Frame) UsedRows() int {
	if f.Rows <= 0 {
		return 0
	}
	return f.Rows - 1
}

type tokenLayout struct {
	width     int
	limit     int
	cursor    int
	total     int
	styles    theme.Styles
	selWidth  int
	rstWidth  int
	rows      []string
	cursorRow int
}

// Layout lays out query and matches into a frame. Tokens are packed left to
// right and wrapped at the geometry's wrap width, so the number of rows is
// known exactly. When the row budget is smaller than the rows needed, the
// window scrolls so the selected token stays visible.
func Layout(query string, matches []state.Entry, cursor int, geo Geometry, styles theme.Styles) Frame {
	selW, rstW := styles.Widths()
	l := &tokenLayout{
		width:     geo.WrapWidth(),
		limit:     geo.Lines,
		cursor:    cursor,
		total:     len(matches),
		styles:    styles,
		selWidth:  selW,
		rstWidth:  rstW,
		cursorRow: -1,
	}
	rows := l.build(matches)

	var b strings.Builder
	b.WriteString(query)
	b.WriteString(lineBreak)
	b.WriteString(strings.Join(rows, lineBreak))

	cols := terminal.NormalizeColumns(geo.Columns)
	return Frame{
		Text:      b.String(),
		Rows:      len(rows),
		QueryRows: queryRows(query, cols),
		Width:     l.width,
		Columns:   cols,
	}
}

func (l *tokenLayout) build(matches []state.Entry) []string {
	var row strings.Builder
	rowWidth := 0
	for i, e := range matches {
		tok, w := l.token(i, e.Text)
		if rowWidth > 0 && rowWidth+w > l.width {
			l.rows = append(l.rows, row.String())
			row.Reset()
			rowWidth = 0
			if !l.needMore() {
				return l.window()
			}
		}
		if i == l.cursor {
			l.cursorRow = len(l.rows)
		}
		row.WriteString(tok)
		rowWidth += w
	}
	if rowWidth > 0 || len(l.rows) == 0 {
		l.rows = append(l.rows, row.String())
	}
	return l.window()
}

// needMore reports whether further rows can still become visible.
func (l *tokenLayout) needMore() bool {
	if l.limit <= 0 || len(l.rows) < l.limit {
		return true
	}
	if l.cursor >= 0 && l.cursor < l.total && l.cursorRow < 0 {
		return true
	}
	return len(l.rows) <= l.cursorRow
}

func (l *tokenLayout) window() []string {
	if l.limit <= 0 || len(l.rows) <= l.limit {
		return l.rows
	}
	start := 0
	if l.cursorRow >= l.limit {
		start = l.cursorRow - l.limit + 1
	}
	return l.rows[start : start+l.limit]
}

func (l *tokenLayout) token(i int, text string) (string, int) {
	selected := i == l.cursor
	avail := l.width - ansi.StringWidth(tokenSeparator)
	if selected {
		avail -= l.selWidth + l.rstWidth
	}
	if avail < 0 {
		avail = 0
	}
	if ansi.StringWidth(text) > avail {
		text = truncate.String(text, uint(avail))
	}
	w := ansi.StringWidth(text) + ansi.StringWidth(tokenSeparator)
	if !selected {
		return text + tokenSeparator, w
	}
	return l.styles.Selected + text + l.styles.Reset + tokenSeparator, w + l.selWidth + l.rstWidth
}

// queryRows is the number of terminal rows the query line occupies once the
// terminal wraps it at cols.
func queryRows(query string, cols int) int {
	w := ansi.StringWidth(query)
	if w == 0 || cols <= 0 {
		return 1
	}
	return 1 + (w-1)/cols
}

// EraseSequence returns the bytes that remove f from the screen: cursor up to
// the query line, back to the first column, clear to the end of the screen.
func EraseSequence(f Frame) string {
	var b strings.Builder
	if up := f.UsedRows() + f.QueryRows; up > 0 {
		b.WriteString(ansi.CursorUp(up))
	}
	b.WriteString(strings.Repeat(string(rune(ansi.BS)), f.Columns))
	b.WriteString(ansi.EraseScreenBelow)
	return b.String()
}

// Renderer draws frames on the interactive surface and remembers the last one
// so it can be erased before the next frame is drawn.
type Renderer struct {
	out    io.Writer
	geo    Geometry
	styles theme.Styles
	last   *Frame
}

// NewRenderer constructs a renderer writing to out.
func NewRenderer(out io.Writer, geo Geometry, styles theme.Styles) *Renderer {
	geo.Columns = terminal.NormalizeColumns(geo.Columns)
	return &Renderer{out: out, geo: geo, styles: styles}
}

// SetColumns updates the cached terminal width used by the next frame.
func (r *Renderer) SetColumns(cols int) {
	r.geo.Columns = terminal.NormalizeColumns(cols)
}

// Geometry returns the geometry used for the next frame.
func (r *Renderer) Geometry() Geometry {
	return r.geo
}

// Last returns the frame currently on screen, if any.
func (r *Renderer) Last() (Frame, bool) {
	if r.last == nil {
		return Frame{}, false
	}
	return *r.last, true
}

// Render draws the menu. A frame already on screen must be erased first.
func (r *Renderer) Render(m *state.Menu) (Frame, error) {
	frame := Layout(m.Query.String(), m.Store.MatchSet(), m.Cursor, r.geo, r.styles)
	if _, err := io.WriteString(r.out, frame.Text); err != nil {
		return frame, fmt.Errorf("render frame: %w", err)
	}
	r.last = &frame
	events.UI.Render(frame.Rows, frame.QueryRows, frame.Width)
	return frame, nil
}

// Erase removes the last rendered frame. It does nothing when the screen
// holds no frame.
func (r *Renderer) Erase() error {
	if r.last == nil {
		return nil
	}
	seq := EraseSequence(*r.last)
	r.last = nil
	if _, err := io.WriteString(r.out, seq); err != nil {
		return fmt.Errorf("erase frame: %w", err)
	}
	return nil
}
