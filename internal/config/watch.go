package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// ReloadEvent reports that one of the watched config/allowlist files
// changed, debounced so a burst of writes (editors that write-then-rename)
// produces one event.
type ReloadEvent struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches a project's .dcg directory for config.toml and
// allowlist.toml changes and emits debounced ReloadEvent values on Events().
type Watcher struct {
	logger         *log.Logger
	debounceWindow time.Duration

	fsw    *fsnotify.Watcher
	events chan ReloadEvent
	errors chan error

	mu      sync.Mutex
	pending map[string]fsnotify.Op
	timer   *time.Timer

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewWatcher creates a Watcher for projectRoot's .dcg directory. The
// directory does not need to exist yet when NewWatcher is called, but Start
// returns an error if it is still missing then; it is not retried later.
func NewWatcher(projectRoot string) (*Watcher, error) {
	if strings.TrimSpace(projectRoot) == "" {
		return nil, fmt.Errorf("config: project root must not be empty")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		logger:         log.Default(),
		debounceWindow: 250 * time.Millisecond,
		fsw:            fsw,
		events:         make(chan ReloadEvent, 16),
		errors:         make(chan error, 1),
		pending:        make(map[string]fsnotify.Op),
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}, nil
}

// Events returns the channel of debounced reload events.
func (w *Watcher) Events() <-chan ReloadEvent { return w.events }

// Errors returns the channel of watcher errors.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Start begins watching <projectRoot>/.dcg for config.toml and
// allowlist.toml changes.
func (w *Watcher) Start(projectRoot string) error {
	dir := filepath.Join(projectRoot, ".dcg")
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("config: watching %s: %w", dir, err)
	}

	go w.loop()
	return nil
}

// Stop shuts the watcher down and waits for its goroutine to exit.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	<-w.doneCh
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if isRelevantConfigFile(ev.Name) {
				w.record(ev.Name, ev.Op)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				w.logger.Warn("config watcher error dropped, channel full", "error", err)
			}
		}
	}
}

// record aggregates an operation for path and (re)arms the debounce timer.
func (w *Watcher) record(path string, op fsnotify.Op) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[path] |= op
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceWindow, w.flush)
}

// flush emits one ReloadEvent per path accumulated since the last flush.
func (w *Watcher) flush() {
	w.mu.Lock()
	pending := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.mu.Unlock()

	for path, op := range pending {
		select {
		case w.events <- ReloadEvent{Path: path, Op: op}:
		default:
			w.logger.Warn("config reload event dropped, channel full", "path", path)
		}
	}
}

// isRelevantConfigFile reports whether path is one dcg cares about
// reloading; editor swap/lock files and anything outside .dcg are ignored.
func isRelevantConfigFile(path string) bool {
	base := filepath.Base(path)
	return base == "config.toml" || base == "allowlist.toml"
}
