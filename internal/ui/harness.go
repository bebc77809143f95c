package ui

import (
	"bytes"
	"strings"

	"github.com/atomicstack/sdmenu/internal/backend"
	"github.com/atomicstack/sdmenu/internal/theme"
	"github.com/atomicstack/sdmenu/internal/ui/state"
)

// Harness drives a session with scripted keystrokes for tests.
type Harness struct {
	session *Session
	screen  *bytes.Buffer
	events  chan backend.Event
}

// NewHarness creates a harness over menu that will read keys in order.
func NewHarness(menu *state.Menu, geo Geometry, styles theme.Styles, keys string) *Harness {
	screen := &bytes.Buffer{}
	evts := make(chan backend.Event, 1)
	view := NewRenderer(screen, geo, styles)
	return &Harness{
		session: NewSession(menu, view, strings.NewReader(keys), evts),
		screen:  screen,
		events:  evts,
	}
}

// Resize queues a resize event that the session applies before its next
// frame.
func (h *Harness) Resize(cols int) {
	h.events <- backend.Event{Kind: backend.KindResize, Columns: cols}
}

// Step runs a single iteration.
func (h *Harness) Step() (Result, bool, error) {
	return h.session.Step()
}

// Run runs the session to completion.
func (h *Harness) Run() (Result, error) {
	return h.session.Run()
}

// Screen returns everything written to the interactive surface so far.
func (h *Harness) Screen() string {
	return h.screen.String()
}

// Session exposes the underlying session.
func (h *Harness) Session() *Session {
	return h.session
}
