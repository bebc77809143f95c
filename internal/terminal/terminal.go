// Package terminal wraps the OS-facing terminal concerns of the selector:
// switching the controlling terminal into raw mode, restoring it on every
// exit path and querying the column count with a safe fallback.
package terminal

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/term"
)

// FallbackColumns is used when the terminal width cannot be determined.
const FallbackColumns = 80

// ErrNotTerminal is returned by MakeRaw when fd is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Mode is an acquired terminal mode. Restore is idempotent and safe to call
// from several exit paths, including a signal goroutine.
type Mode struct {
	fd    int
	state *term.State

	once sync.Once
	err  error
}

// MakeRaw switches fd into raw mode: no line buffering, no echo. When fd is
// not a terminal the returned Mode is inactive and Restore does nothing.
func MakeRaw(fd int) (*Mode, error) {
	if fd < 0 || !term.IsTerminal(fd) {
		return &Mode{fd: fd}, ErrNotTerminal
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return &Mode{fd: fd}, fmt.Errorf("enable raw mode: %w", err)
	}
	return &Mode{fd: fd, state: old}, nil
}

// Active reports whether the mode changed the terminal state.
func (m *Mode) Active() bool {
	return m != nil && m.state != nil
}

// Restore puts the terminal back into the state captured by MakeRaw.
func (m *Mode) Restore() error {
	if !m.Active() {
		return nil
	}
	m.once.Do(func() {
		if err := term.Restore(m.fd, m.state); err != nil {
			m.err = fmt.Errorf("restore terminal: %w", err)
		}
	})
	return m.err
}

// Columns returns the width of the terminal on fd, or FallbackColumns when
// the query fails or reports a degenerate size.
func Columns(fd int) int {
	if fd < 0 {
		return FallbackColumns
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return FallbackColumns
	}
	return NormalizeColumns(width)
}

// NormalizeColumns replaces non-positive widths with FallbackColumns.
func NormalizeColumns(cols int) int {
	if cols <= 0 {
		return FallbackColumns
	}
	return cols
}
