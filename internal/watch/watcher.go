// Package watch keeps a library root under observation and triggers a
// rescan once filesystem activity has settled.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Logger is the subset of the application logger used by the watcher.
type Logger interface {
	Debug(string, ...interface{})
	Error(string, ...interface{})
}

// Watcher watches every directory under a root and calls a trigger
// function after a quiet period following create, write, rename or remove
// events. Triggers never overlap.
type Watcher struct {
	root     string
	debounce time.Duration
	trigger  func()
	log      Logger

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	timer   *time.Timer
	pending int // events since the last trigger

	runMu    sync.Mutex
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New creates a watcher for root. trigger is called from a background
// goroutine.
func New(root string, debounce time.Duration, log Logger, trigger func()) *Watcher {
	return &Watcher{
		root:     root,
		debounce: debounce,
		trigger:  trigger,
		log:      log,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start registers every directory under the root and begins processing
// events.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = fw

	if err := w.addTree(w.root); err != nil {
		fw.Close()
		w.watcher = nil
		return err
	}

	go w.processEvents()
	return nil
}

// Stop stops event processing and releases the underlying watcher. A
// trigger that is already running is allowed to finish before Stop returns.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		if w.watcher != nil {
			err = w.watcher.Close()
			<-w.done
		}
		// Wait out a trigger that is already running.
		w.runMu.Lock()
		w.runMu.Unlock()
	})
	return err
}

// Run starts the watcher and blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return w.Stop()
}

// addTree watches dir and all directories below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *Watcher) processEvents() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("File watcher error: %v", err)

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Chmod fires on reads and attribute changes; nothing to rename.
	if event.Op == fsnotify.Chmod {
		return
	}

	if event.Has(fsnotify.Create) {
		if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
			// Directories created with their contents (mv, mkdir -p) need
			// the whole subtree added.
			if err := w.addTree(event.Name); err != nil {
				w.log.Error("Cannot watch %s: %v", event.Name, err)
			}
		}
	}

	w.log.Debug("Watch event: %s", event)
	w.schedule()
}

// schedule (re)arms the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending++
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	select {
	case <-w.stopCh:
		return
	default:
	}

	w.mu.Lock()
	n := w.pending
	w.pending = 0
	w.mu.Unlock()
	if n == 0 {
		return
	}

	w.log.Debug("Detected %d change(s), rescanning", n)
	w.trigger()
}
