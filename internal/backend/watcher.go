package backend

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// Kind represents the type of event emitted by the watcher.
type Kind int

const (
	// KindResize carries the new terminal column count.
	KindResize Kind = iota
	// KindTerminate carries a signal asking the process to stop.
	KindTerminate
)

// Event conveys a terminal resize or a termination request.
type Event struct {
	Kind    Kind
	Columns int
	Signal  os.Signal
}

// Watcher turns asynchronous process signals into events. Resize events are
// coalesced so that a reader only ever sees the latest column count; the
// main loop consumes them between iterations.
type Watcher struct {
	columns func() int

	ctx    context.Context
	cancel context.CancelFunc

	signals      <-chan os.Signal
	stopNotify   func()
	events       chan Event
	terminations chan Event
	wg           sync.WaitGroup
}

// NewWatcher subscribes to resize and termination signals. columns is called
// on every resize to obtain the current terminal width.
func NewWatcher(columns func() int) *Watcher {
	sigCh := make(chan os.Signal, 4)
	signal.Notify(sigCh, watchedSignals...)
	w := newWatcher(columns, sigCh)
	w.stopNotify = func() { signal.Stop(sigCh) }
	return w
}

func newWatcher(columns func() int, signals <-chan os.Signal) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		columns:      columns,
		ctx:          ctx,
		cancel:       cancel,
		signals:      signals,
		events:       make(chan Event, 1),
		terminations: make(chan Event, 1),
	}

	w.wg.Add(1)
	go w.watch()

	go func() {
		w.wg.Wait()
		close(w.events)
		close(w.terminations)
	}()

	return w
}

// Events returns the channel of resize events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Terminations returns the channel of termination requests.
func (w *Watcher) Terminations() <-chan Event {
	return w.terminations
}

// Stop unsubscribes from signals and stops the watcher goroutine.
func (w *Watcher) Stop() {
	if w.stopNotify != nil {
		w.stopNotify()
	}
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and both channels are
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) watch() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case sig, ok := <-w.signals:
			if !ok {
				return
			}
			if isResize(sig) {
				w.publishResize(w.columns())
				continue
			}
			select {
			case w.terminations <- Event{Kind: KindTerminate, Signal: sig}:
			case <-w.ctx.Done():
				return
			}
		}
	}
}

// publishResize replaces any unconsumed resize event with the new one.
func (w *Watcher) publishResize(cols int) {
	evt := Event{Kind: KindResize, Columns: cols}
	for {
		select {
		case w.events <- evt:
			return
		default:
		}
		select {
		case <-w.events:
		default:
		}
	}
}
