// Package watch validates messages as they land in an inbox directory.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher calls Handle for every file created or rewritten in Dir whose base
// name matches Pattern. Writes to one file are debounced, so Handle sees the
// file once it has been quiet for Debounce.
type Watcher struct {
	Dir      string
	Pattern  string
	Debounce time.Duration
	Handle   func(path string)
	Logger   zerolog.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

// Run watches until ctx is cancelled. Pending debounced calls are dropped on
// return; calls already running are waited for.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Handle == nil {
		return fmt.Errorf("watch: no handler")
	}
	if _, err := filepath.Match(w.Pattern, ""); err != nil {
		return fmt.Errorf("watch: pattern %q: %w", w.Pattern, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.Dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", w.Dir, err)
	}
	w.mu.Lock()
	w.timers = map[string]*time.Timer{}
	w.stopped = false
	w.mu.Unlock()
	defer w.stopTimers()

	w.Logger.Info().Str("dir", w.Dir).Str("pattern", w.Pattern).Dur("debounce", w.Debounce).Msg("watching inbox")
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info().Msg("watcher stopped")
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return fmt.Errorf("watch: events channel closed")
			}
			if !w.relevant(ev) {
				continue
			}
			w.Logger.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("file event")
			w.schedule(ev.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return fmt.Errorf("watch: errors channel closed")
			}
			w.Logger.Error().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return false
	}
	pattern := w.Pattern
	if pattern == "" {
		pattern = "*"
	}
	ok, _ := filepath.Match(pattern, filepath.Base(ev.Name))
	return ok
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.Debounce, func() {
		w.mu.Lock()
		if w.stopped {
			w.mu.Unlock()
			return
		}
		delete(w.timers, path)
		w.wg.Add(1)
		w.mu.Unlock()
		defer w.wg.Done()
		w.Handle(path)
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	w.stopped = true
	for p, t := range w.timers {
		t.Stop()
		delete(w.timers, p)
	}
	w.mu.Unlock()
	w.wg.Wait()
}
