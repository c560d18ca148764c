package gallery

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsFixtureChanges(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher(WatcherConfig{Dir: dir, Debounce: 20 * time.Millisecond, Logger: quietLogger()})

	changes := make(chan Change, 8)
	w.OnChange(func(c Change) { changes <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for !w.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("watcher never started")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// Not a fixture file.
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	path := filepath.Join(dir, "card.yaml")
	if err := os.WriteFile(path, []byte("name: card\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if c.Path != path || c.Removed {
			t.Errorf("change = %+v, want write of %s", c, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	os.Remove(path)
	select {
	case c := <-changes:
		if c.Path != path || !c.Removed {
			t.Errorf("change = %+v, want removal of %s", c, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("removal not reported")
	}

	w.Stop()
	if w.IsRunning() {
		t.Error("IsRunning() after Stop")
	}
}
