package cliconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/kalliopectl/pkg/log"
)

// DefaultDebounceDelay is how long the watcher waits after the last change
// to the config file before reloading it.
const DefaultDebounceDelay = 100 * time.Millisecond

// Watcher reloads the config file when it changes on disk.
//
// load and onChange are only ever called from the goroutine running Run,
// one reload at a time.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file on save are still observed.
type Watcher struct {
	path     string
	load     func() (Config, error)
	onChange func(Config, error)
	logger   log.Logger

	DebounceDelay time.Duration

	mu       sync.Mutex
	debounce *time.Timer
	pending  chan struct{}
}

// NewWatcher creates a watcher for path. load is called on every change and
// its result is handed to onChange.
func NewWatcher(path string, load func() (Config, error), onChange func(Config, error), logger log.Logger) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:          path,
		load:          load,
		onChange:      onChange,
		logger:        logger,
		DebounceDelay: DefaultDebounceDelay,
		pending:       make(chan struct{}, 1),
	}
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	if w.path == "" {
		return fmt.Errorf("config watcher: no config path")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("config watcher: watch %s: %w", dir, err)
	}
	w.logger.Info("watching config file", log.String("path", w.path))

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceReload()

		case <-w.pending:
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", log.Err(err))
		}
	}
}

// debounceReload schedules a reload once events stop arriving for
// DebounceDelay. The timer only signals Run; a reload requested while one
// is in flight is coalesced into a single follow-up.
func (w *Watcher) debounceReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}

	w.debounce = time.AfterFunc(w.DebounceDelay, func() {
		select {
		case w.pending <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) reload() {
	cfg, err := w.load()
	if err != nil {
		w.logger.Error("reload config", log.String("path", w.path), log.Err(err))
	} else {
		w.logger.Info("config reloaded", log.String("path", w.path))
	}
	w.onChange(cfg, err)
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}
