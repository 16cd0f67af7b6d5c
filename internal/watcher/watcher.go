// Package watcher reloads the contributor directory when the index file in a
// local data directory changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"contribcard/internal/directory"
	"contribcard/internal/eventbus"
)

const (
	DefaultDebounce = 250 * time.Millisecond
	DefaultTimeout  = 10 * time.Second
)

// Loader loads the contributor directory
type Loader interface {
	LoadDirectory(ctx context.Context) (*directory.Directory, error)
}

// Options tunes an IndexWatcher
type Options struct {
	// Debounce coalesces bursts of writes into one reload
	Debounce time.Duration
	// Timeout bounds a single reload
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// Reload loads the directory and publishes the outcome on bus
func Reload(ctx context.Context, loader Loader, bus eventbus.EventBus) (*directory.Directory, error) {
	dir, err := loader.LoadDirectory(ctx)
	if err != nil {
		log.WithError(err).Warn("watcher: directory load failed")
		bus.Publish(eventbus.DirectoryLoadFailedEvent{Err: err})
		return nil, err
	}
	bus.Publish(eventbus.DirectoryLoadedEvent{Directory: dir, Count: dir.Len()})
	return dir, nil
}

// IndexWatcher watches one index file and reloads the directory after it
// settles
type IndexWatcher struct {
	fsw       *fsnotify.Watcher
	indexFile string
	loader    Loader
	bus       eventbus.EventBus
	opts      Options

	mu      sync.Mutex
	timer   *time.Timer
	stopCh  chan struct{}
	stopped bool
}

// New starts watching the directory holding indexFile. Events are not
// processed until Run is called.
func New(indexFile string, loader Loader, bus eventbus.EventBus, opts Options) (*IndexWatcher, error) {
	abs, err := filepath.Abs(indexFile)
	if err != nil {
		return nil, fmt.Errorf("resolve absolute path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the parent: editors and sync tools replace the file by rename
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &IndexWatcher{
		fsw:       fsw,
		indexFile: abs,
		loader:    loader,
		bus:       bus,
		opts:      opts.withDefaults(),
		stopCh:    make(chan struct{}),
	}, nil
}

// IndexFile returns the watched file
func (w *IndexWatcher) IndexFile() string {
	return w.indexFile
}

// Run processes file events until ctx is done or Close is called
func (w *IndexWatcher) Run(ctx context.Context) error {
	log.WithField("file", w.indexFile).Info("watcher: watching contributors index")
	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher: fsnotify error")
		}
	}
}

func (w *IndexWatcher) handle(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.indexFile {
		return
	}
	// A removal is followed by a create when the file is replaced
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	log.WithField("op", event.Op.String()).Debug("watcher: index changed")
	w.scheduleReload(ctx)
}

func (w *IndexWatcher) scheduleReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.opts.Debounce, func() {
		rctx, cancel := context.WithTimeout(ctx, w.opts.Timeout)
		defer cancel()
		_, _ = Reload(rctx, w.loader, w.bus)
	})
}

// Close stops the watcher. Safe to call multiple times.
func (w *IndexWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.stopCh)
	return w.fsw.Close()
}
