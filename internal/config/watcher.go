// ABOUTME: fsnotify-based watcher for hooks file change notification
// ABOUTME: Watches parent directories so files created later are still seen

package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// Watcher notifies when any of the monitored hooks files changes. It exists
// for hosts that want to refresh listings; loading itself never caches, so a
// watcher is never required for correctness.
type Watcher struct {
	paths    map[string]bool
	onChange func(path string)
	fsw      *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher that calls onChange with the changed path.
func NewWatcher(paths []string, onChange func(path string)) *Watcher {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[filepath.Clean(p)] = true
	}
	return &Watcher{
		paths:    set,
		onChange: onChange,
		done:     make(chan struct{}),
	}
}

// Start begins watching. The parent directory of each path is monitored so
// that files written atomically (rename into place) or created after Start
// still trigger notifications. Directories that do not exist are skipped.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw

	dirs := make(map[string]bool)
	for p := range w.paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			log.Debug("watcher: skipping %s: %v", dir, err)
		}
	}

	go w.loop()
	return nil
}

// Stop halts the watcher. Safe to call multiple times and concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		if w.fsw != nil {
			w.fsw.Close()
		}
	})
}

func (w *Watcher) loop() {
	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.paths[filepath.Clean(ev.Name)] && ev.Op&relevant != 0 {
				w.onChange(ev.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Debug("watcher: %v", err)
		}
	}
}
