package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/sdmenu/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
)

func newHarness(keys string, candidates ...string) *Harness {
	m := state.NewMenu(candidates, 0, state.Matcher{})
	return NewHarness(m, Geometry{Columns: 80, Width: 82, Lines: 2}, markers, keys)
}

func TestSessionCommitsBestMatch(t *testing.T) {
	h := newHarness("sna\r", "apple", "snapshot", "snap")
	res, err := h.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Action != ActionCommit || res.Output != "snap" {
		t.Fatalf("expected commit of snap, got %#v", res)
	}
	if !strings.Contains(h.Screen(), "sna\r\n<snap> snapshot ") {
		t.Fatalf("expected ranked frame on screen, got %q", h.Screen())
	}
}

func TestSessionTabSelectsNextMatch(t *testing.T) {
	h := newHarness("sna\t\n", "apple", "snapshot", "snap")
	res, err := h.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Output != "snapshot" {
		t.Fatalf("expected snapshot after tab, got %q", res.Output)
	}
}

func TestSessionCursorPastMatchesCommitsQuery(t *testing.T) {
	h := newHarness("sna\t\t\t\n", "apple", "snapshot", "snap")
	res, err := h.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Action != ActionCommit || res.Output != "sna" {
		t.Fatalf("expected raw query committed, got %#v", res)
	}
}

func TestSessionEmptyCandidates(t *testing.T) {
	h := newHarness("hello\n")
	res, err := h.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Output != "hello" {
		t.Fatalf("expected typed query, got %q", res.Output)
	}
}

func TestSessionEscapeCancels(t *testing.T) {
	h := newHarness("ap\x1b", "apple")
	res, err := h.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Action != ActionCancel || res.Output != "" {
		t.Fatalf("expected cancel without output, got %#v", res)
	}
}

func TestSessionEOFCancels(t *testing.T) {
	h := newHarness("ap", "apple")
	res, err := h.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Action != ActionCancel {
		t.Fatalf("expected cancel on EOF, got %#v", res)
	}
}

func TestSessionBackspaceRestoresAllMatches(t *testing.T) {
	h := newHarness("zz\x7f", "one", "two", "three")
	for i := 0; i < 3; i++ {
		if _, done, err := h.Step(); err != nil || done {
			t.Fatalf("step %d: done=%v err=%v", i, done, err)
		}
	}
	m := h.Session().Menu()
	if m.Store.Matches() != m.Store.Len() {
		t.Fatalf("expected all entries after clearing, got %d", m.Store.Matches())
	}
	if m.Cursor != 0 {
		t.Fatalf("expected cursor reset, got %d", m.Cursor)
	}
}

func TestSessionErasesEveryFrame(t *testing.T) {
	h := newHarness("a\t\n", "alpha", "beta", "gamma")
	if _, err := h.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	screen := h.Screen()
	renders := strings.Count(screen, "\r\n")
	erases := strings.Count(screen, ansi.EraseScreenBelow)
	if renders != 3 || erases != 3 {
		t.Fatalf("expected 3 renders paired with 3 erases, got %d/%d in %q", renders, erases, screen)
	}
	if !strings.HasSuffix(screen, ansi.EraseScreenBelow) {
		t.Fatalf("expected screen left clean, got %q", screen)
	}
}

func TestSessionAppliesResizeBeforeRender(t *testing.T) {
	h := newHarness("\x1b", "aaaa", "bbbb", "cccc")
	h.Resize(6)
	if _, err := h.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(h.Screen(), "\r\n<aaa> \r\nbbbb ") {
		t.Fatalf("expected frame wrapped at 6 columns, got %q", h.Screen())
	}
	if got := h.Session().view.Geometry().Columns; got != 6 {
		t.Fatalf("expected cached columns 6, got %d", got)
	}
}

type failingReader struct{}

func (failingReader) ReadByte() (byte, error) {
	return 0, errors.New("tty gone")
}

func TestSessionPropagatesReadErrors(t *testing.T) {
	var screen strings.Builder
	m := state.NewMenu([]string{"x"}, 0, state.Matcher{})
	s := NewSession(m, NewRenderer(&screen, Geometry{Columns: 80}, markers), failingReader{}, nil)
	_, err := s.Run()
	if err == nil || !strings.Contains(err.Error(), "tty gone") {
		t.Fatalf("expected read error, got %v", err)
	}
	if !strings.HasSuffix(screen.String(), ansi.EraseScreenBelow) {
		t.Fatalf("expected frame erased before returning, got %q", screen.String())
	}
}
