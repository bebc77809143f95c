package terminal

import (
	"errors"
	"os"
	"testing"
)

func TestColumnsFallsBackOnInvalidDescriptor(t *testing.T) {
	if got := Columns(-1); got != FallbackColumns {
		t.Fatalf("expected fallback %d, got %d", FallbackColumns, got)
	}
}

func TestColumnsFallsBackForPipes(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()
	if got := Columns(int(w.Fd())); got != FallbackColumns {
		t.Fatalf("expected fallback %d for a pipe, got %d", FallbackColumns, got)
	}
}

func TestNormalizeColumns(t *testing.T) {
	cases := map[int]int{-3: FallbackColumns, 0: FallbackColumns, 1: 1, 132: 132}
	for in, want := range cases {
		if got := NormalizeColumns(in); got != want {
			t.Fatalf("NormalizeColumns(%d): expected %d, got %d", in, want, got)
		}
	}
}

func TestMakeRawOnNonTerminalIsInactive(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	mode, err := MakeRaw(int(r.Fd()))
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if mode.Active() {
		t.Fatalf("expected inactive mode for a pipe")
	}
	if err := mode.Restore(); err != nil {
		t.Fatalf("expected no-op restore, got %v", err)
	}
}

func TestNilModeRestore(t *testing.T) {
	var mode *Mode
	if mode.Active() {
		t.Fatalf("expected nil mode to be inactive")
	}
	if err := mode.Restore(); err != nil {
		t.Fatalf("expected nil restore to succeed, got %v", err)
	}
}
