package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called when the watched config file changes.
type Handler func(path string)

// Watcher watches one config file and reports changes after a debounce
// window, so editors that write via rename or multiple syscalls trigger
// a single reload.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	handler  Handler
	debounce time.Duration
	done     chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce window. Default 100ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// Watch starts watching the config file. The parent directory is
// watched rather than the file itself, because atomic writers replace
// the file and would otherwise silence the watch. The handler runs on
// the watcher goroutine; it should only hand the event off.
func Watch(path string, handler Handler, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     filepath.Clean(path),
		handler:  handler,
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.handler(w.path)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
