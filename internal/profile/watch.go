package profile

import (
	"os"
	"sync"
	"time"
)

// FileWatcher polls file modification times and triggers a callback on change.
// It uses only the standard library for simplicity.
type FileWatcher struct {
	Paths     []string
	Interval  time.Duration
	list      func() ([]string, error) // re-read on every scan when set
	onChange  func(string)             // called with path that changed
	stopCh    chan struct{}
	stopOnce  sync.Once
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher for given paths and interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// NewListWatcher watches whatever list returns, calling it on every scan so
// files created after Start are picked up too. Use (*Loader).Files to watch
// a profile directory.
func NewListWatcher(list func() ([]string, error), interval time.Duration, onChange func(string)) *FileWatcher {
	w := NewFileWatcher(nil, interval, onChange)
	w.list = list
	return w
}

// Start primes the mtime cache and begins polling in a goroutine.
func (w *FileWatcher) Start() {
	w.scanAll(true)
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scanAll(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher. It is safe to call more than once.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *FileWatcher) paths() ([]string, bool) {
	if w.list == nil {
		return w.Paths, true
	}
	listed, err := w.list()
	if err != nil {
		// keep the previous state rather than report every file as gone
		return nil, false
	}
	return append(append([]string(nil), w.Paths...), listed...), true
}

// scanAll checks mtimes and invokes onChange for files that appeared, changed
// or disappeared since the last scan.
func (w *FileWatcher) scanAll(prime bool) {
	paths, ok := w.paths()
	if !ok {
		return
	}
	present := make(map[string]bool, len(paths))
	for _, p := range paths {
		if present[p] {
			continue
		}
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		present[p] = true
		mt := fi.ModTime()
		last, known := w.lastMTime[p]
		w.lastMTime[p] = mt
		if !prime && (!known || mt.After(last)) {
			w.notify(p)
		}
	}
	for p := range w.lastMTime {
		if present[p] {
			continue
		}
		delete(w.lastMTime, p)
		if !prime {
			w.notify(p)
		}
	}
}

func (w *FileWatcher) notify(p string) {
	if w.onChange != nil {
		w.onChange(p)
	}
}
