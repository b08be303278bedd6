package reload

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/muurk/sdvxrgb/internal/logging"
)

// Watcher signals when a configuration file may have changed.
//
// It watches the file's directory rather than the file, so that editors
// which replace the file on save and files that do not exist yet are both
// seen. Signals coalesce: a burst of events yields at least one value on
// Changes, never a backlog.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	changes  chan struct{}
	errors   chan error
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher starts watching the directory that contains path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		watcher: fw,
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}, nil
}

// Start processes file system events until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.processEvents(ctx)
}

// Changes delivers a value after the watched file is created, written,
// removed, renamed or has its attributes changed.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Errors delivers watcher errors. Errors arriving while one is pending are
// dropped.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Stop stops watching. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			logging.Debug("Config file event",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()),
			)
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("Config watcher error", zap.Error(err))
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
