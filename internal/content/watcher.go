package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"devd.dev/internal/models"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a content file into a Store whenever the file changes.
// A reload that fails keeps the previous snapshot.
type Watcher struct {
	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	store     *Store
	path      string
	logger    *zap.Logger
	debounce  time.Duration
	transform func(*models.Portfolio)
	stopCh    chan struct{}
	doneCh    chan struct{}
	running   bool
	stopOnce  sync.Once

	stats WatcherStats
}

// WatcherStats counts reload attempts
type WatcherStats struct {
	Reloads  int
	Failures int
	LastErr  error
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits after the last event before
// reloading. Editors often write a file in several steps.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithTransform runs fn on every reloaded snapshot before it is stored,
// so settings that override the file keep applying after a reload.
func WithTransform(fn func(*models.Portfolio)) WatcherOption {
	return func(w *Watcher) {
		w.transform = fn
	}
}

// NewWatcher creates a watcher for path that updates store
func NewWatcher(path string, store *Store, logger *zap.Logger, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Watcher{
		watcher:  fsw,
		store:    store,
		path:     abs,
		logger:   logger,
		debounce: defaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching. It returns immediately; the watch loop runs until ctx
// is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	// Watch the directory, not the file: atomic saves replace the inode.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.running = true
	go w.loop(ctx)

	w.logger.Info("Watching content file", zap.String("path", w.path))
	return nil
}

// Stop ends the watch loop and releases the underlying watcher
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)

		w.mu.Lock()
		running := w.running
		w.mu.Unlock()
		if running {
			<-w.doneCh
		}

		err = w.watcher.Close()
	})
	return err
}

// Stats returns a copy of the reload counters
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Content watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) reload() {
	p, err := Load(w.path)

	w.mu.Lock()
	if err != nil {
		w.stats.Failures++
		w.stats.LastErr = err
	} else {
		w.stats.Reloads++
		w.stats.LastErr = nil
	}
	w.mu.Unlock()

	if err != nil {
		w.logger.Error("Content reload failed, keeping previous content", zap.Error(err))
		return
	}

	if w.transform != nil {
		w.transform(p)
	}
	w.store.Replace(p)
	w.logger.Info("Content reloaded",
		zap.String("path", w.path),
		zap.Uint64("version", w.store.Version()),
		zap.Int("projects", len(p.Projects.Projects)))
	LogFindings(w.logger, Validate(p))
}
