package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/sdmenu/internal/backend"
	"github.com/atomicstack/sdmenu/internal/logging"
	"github.com/atomicstack/sdmenu/internal/logging/events"
	"github.com/atomicstack/sdmenu/internal/terminal"
	"github.com/atomicstack/sdmenu/internal/theme"
	"github.com/atomicstack/sdmenu/internal/ui"
	"github.com/atomicstack/sdmenu/internal/ui/state"
)

// Config describes user-provided application options.
type Config struct {
	Candidates []string
	Lines      int
	Width      int
	Selected   string
	Match      state.MatchMode
	IgnoreCase bool
	InputLimit int
}

// Streams are the descriptors a run reads keys from, draws on and emits the
// selection to. In and Err are used as terminals when they expose a file
// descriptor that refers to one.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// exit is replaced in tests.
var exit = os.Exit

// Run executes the selector on the process's standard streams.
func Run(cfg Config) (ui.Result, error) {
	return RunWith(cfg, StdStreams())
}

// RunWith puts the keyboard into raw mode, runs the interactive loop on
// streams.Err and, on commit, writes the selection followed by a newline to
// streams.Out once the terminal has been restored.
func RunWith(cfg Config, streams Streams) (ui.Result, error) {
	// Without raw mode keys still arrive byte by byte, only line-buffered.
	mode, err := terminal.MakeRaw(fdOf(streams.In))
	if err != nil && !errors.Is(err, terminal.ErrNotTerminal) {
		logging.Error(err)
	}
	events.App.RawMode(mode.Active(), err)
	defer mode.Restore()

	errFd := fdOf(streams.Err)
	watcher := backend.NewWatcher(func() int { return terminal.Columns(errFd) })
	defer watcher.Stop()
	go handleTerminations(watcher.Terminations(), mode)

	matcher := state.Matcher{Mode: cfg.Match, FoldCase: cfg.IgnoreCase}
	menu := state.NewMenu(cfg.Candidates, cfg.InputLimit, matcher)
	geo := ui.Geometry{
		Columns: terminal.Columns(errFd),
		Width:   cfg.Width,
		Lines:   cfg.Lines,
	}
	view := ui.NewRenderer(streams.Err, geo, theme.WithSelected(cfg.Selected))
	session := ui.NewSession(menu, view, bufio.NewReader(streams.In), watcher.Events())

	res, runErr := session.Run()
	if restoreErr := mode.Restore(); restoreErr != nil && runErr == nil {
		runErr = restoreErr
	}
	events.App.Finish(res.Action.String(), res.Output)
	if runErr != nil {
		return res, runErr
	}

	if res.Action == ui.ActionCommit {
		if _, err := fmt.Fprintln(streams.Out, res.Output); err != nil {
			return res, fmt.Errorf("write selection: %w", err)
		}
	}
	return res, nil
}

// handleTerminations restores the terminal and exits with the conventional
// status when a termination signal arrives. It returns once the channel is
// closed.
func handleTerminations(ch <-chan backend.Event, mode *terminal.Mode) {
	for evt := range ch {
		code := backend.ExitCode(evt.Signal)
		events.App.Signal(evt.Signal.String(), code)
		_ = mode.Restore()
		exit(code)
	}
}

func fdOf(v interface{}) int {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return -1
	}
	return int(f.Fd())
}
