package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/sdmenu/internal/backend"
	"github.com/atomicstack/sdmenu/internal/logging/events"
	"github.com/atomicstack/sdmenu/internal/ui/state"
)

// Result describes how a session ended.
type Result struct {
	Action Action
	Output string
}

// Session drives the render, read, interpret, refilter, erase loop for one
// menu. It is not safe for concurrent use; resize events reach it through a
// channel and are applied between iterations.
type Session struct {
	menu   *state.Menu
	view   *Renderer
	keys   io.ByteReader
	events <-chan backend.Event
}

// NewSession wires a menu, a renderer and a keystroke source. events may be
// nil when no resize notifications are available.
func NewSession(menu *state.Menu, view *Renderer, keys io.ByteReader, events <-chan backend.Event) *Session {
	return &Session{menu: menu, view: view, keys: keys, events: events}
}

// Menu exposes the session's menu state.
func (s *Session) Menu() *state.Menu {
	return s.menu
}

// Run loops until the user commits or cancels, input ends, or an I/O error
// occurs. The last frame is always erased before Run returns.
func (s *Session) Run() (Result, error) {
	for {
		res, done, err := s.Step()
		if err != nil || done {
			return res, err
		}
	}
}

// Step performs a single iteration and reports whether the session ended.
func (s *Session) Step() (Result, bool, error) {
	s.applyEvents()
	if _, err := s.view.Render(s.menu); err != nil {
		return Result{}, true, err
	}

	c, err := s.keys.ReadByte()
	if err != nil {
		if eraseErr := s.view.Erase(); eraseErr != nil {
			return Result{}, true, eraseErr
		}
		if errors.Is(err, io.EOF) {
			return Result{Action: ActionCancel}, true, nil
		}
		return Result{}, true, fmt.Errorf("read key: %w", err)
	}

	action := Interpret(s.menu, c)
	if action == ActionNone {
		s.menu.Refilter()
		events.Filter.Refilter(s.menu.Query.String(), s.menu.Store.Matches(), s.menu.Store.Len())
	}
	if err := s.view.Erase(); err != nil {
		return Result{}, true, err
	}

	switch action {
	case ActionNone:
		return Result{}, false, nil
	case ActionCommit:
		return Result{Action: action, Output: s.menu.Commit()}, true, nil
	default:
		return Result{Action: action}, true, nil
	}
}

// applyEvents consumes pending resize events without blocking.
func (s *Session) applyEvents() {
	for {
		select {
		case evt, ok := <-s.events:
			if !ok {
				s.events = nil
				return
			}
			if evt.Kind == backend.KindResize {
				s.view.SetColumns(evt.Columns)
				events.UI.Resize(s.view.Geometry().Columns)
			}
		default:
			return
		}
	}
}
