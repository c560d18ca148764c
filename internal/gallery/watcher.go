package gallery

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vango-dev/renderprop/internal/fixture"
)

// Change is a fixture file that was written, created, or removed.
type Change struct {
	Path    string
	Removed bool
}

// WatcherConfig configures the fixture watcher.
type WatcherConfig struct {
	// Dir is the fixture directory.
	Dir string

	// Debounce is how long a file must stay quiet before its change is
	// reported. Editors often write a file in several steps.
	Debounce time.Duration

	Logger *slog.Logger
}

// Watcher reports changes to fixture files in a directory.
type Watcher struct {
	config   WatcherConfig
	mu       sync.Mutex
	onChange func(Change)
	running  bool
	stopCh   chan struct{}
	pending  map[string]*time.Timer
}

// NewWatcher creates a fixture watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Watcher{
		config:  config,
		pending: make(map[string]*time.Timer),
	}
}

// OnChange sets the callback for fixture changes. It runs on a timer
// goroutine.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start watches until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(w.config.Dir); err != nil {
		return err
	}

	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	w.config.Logger.Debug("watching fixtures", "dir", w.config.Dir)
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stopCh:
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.config.Logger.Warn("fixture watcher error", "error", err)
		}
	}
}

// Stop stops the watcher and drops pending changes.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	close(w.stopCh)
	w.running = false
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
}

// IsRunning reports whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod || !fixture.IsFixtureFile(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[event.Name]; ok {
		t.Reset(w.config.Debounce)
		return
	}
	path := event.Name
	w.pending[path] = time.AfterFunc(w.config.Debounce, func() { w.fire(path) })
}

// fire reports path once its events have settled. Whether the file was
// removed is decided by looking at it then, not by the last event.
func (w *Watcher) fire(path string) {
	w.mu.Lock()
	delete(w.pending, path)
	callback := w.onChange
	running := w.running
	w.mu.Unlock()

	if callback == nil || !running {
		return
	}
	_, err := os.Stat(path)
	callback(Change{Path: path, Removed: os.IsNotExist(err)})
}
