package ui

import (
	"errors"

	"github.com/atomicstack/sdmenu/internal/logging/events"
	"github.com/atomicstack/sdmenu/internal/ui/state"
)

const (
	keyInterrupt = 0x03
	keyBackspace = '\b'
	keyTab       = '\t'
	keyNewline   = '\n'
	keyReturn    = '\r'
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// Action is the outcome of interpreting one keystroke.
type Action int

const (
	// ActionNone keeps the loop running.
	ActionNone Action = iota
	// ActionCommit emits the selection or the query and ends the session.
	ActionCommit
	// ActionCancel ends the session without output.
	ActionCancel
	// ActionInterrupt ends the session after Ctrl-C.
	ActionInterrupt
)

func (a Action) String() string {
	switch a {
	case ActionCommit:
		return "commit"
	case ActionCancel:
		return "cancel"
	case ActionInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// Interpret applies one input byte to the menu. Every byte is handled on its
// own against the current query and cursor; there is no modal state.
func Interpret(m *state.Menu, c byte) Action {
	events.Key.Read(c)
	switch c {
	case keyTab:
		m.AdvanceCursor()
		events.UI.Cursor(m.Cursor, m.Store.Matches())
	case keyBackspace, keyDelete:
		m.ClearQuery()
		events.Filter.Cleared()
	case keyNewline, keyReturn:
		return ActionCommit
	case keyEscape:
		return ActionCancel
	case keyInterrupt:
		return ActionInterrupt
	default:
		if err := m.AppendQuery(c); err != nil {
			if errors.Is(err, state.ErrCapacityExceeded) {
				events.Filter.Overflow(m.Query.Cap())
			}
			return ActionNone
		}
		events.Filter.Append(m.Query.String())
	}
	return ActionNone
}
