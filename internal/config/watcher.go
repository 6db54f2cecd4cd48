package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"careerpilot/internal/errors"
)

// Watcher watches the config file for changes and delivers freshly
// loaded configurations to a callback. Editors replace files rather
// than write them in place, so the parent directory is watched and
// events are debounced before a reload is attempted.
type Watcher struct {
	mu sync.Mutex

	configFile    string
	debounceDelay time.Duration
	debounceTimer *time.Timer

	fsWatcher *fsnotify.Watcher
	stopChan  chan struct{}

	reloadCallback func(*Config)
	logger         *errors.Logger

	running bool
}

// NewWatcher creates a watcher for the given config file. The
// callback receives every successfully reloaded configuration;
// reloads that fail validation are logged and skipped.
func NewWatcher(configFile string, debounceDelay time.Duration, reloadCallback func(*Config), logger *errors.Logger) (*Watcher, error) {
	if configFile == "" {
		return nil, fmt.Errorf("no config file to watch")
	}
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}

	return &Watcher{
		configFile:     configFile,
		debounceDelay:  debounceDelay,
		stopChan:       make(chan struct{}),
		reloadCallback: reloadCallback,
		logger:         logger,
	}, nil
}

// Start begins watching the config file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("config watcher is already running")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(w.configFile)); err != nil {
		if closeErr := fsWatcher.Close(); closeErr != nil && w.logger != nil {
			w.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	w.fsWatcher = fsWatcher
	w.running = true
	go w.watchLoop()

	if w.logger != nil {
		w.logger.Info("Config file watcher started",
			"file", w.configFile,
			"debounce_delay", w.debounceDelay)
	}
	return nil
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	close(w.stopChan)
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	if err := w.fsWatcher.Close(); err != nil && w.logger != nil {
		w.logger.LogError(err, "Failed to close file watcher")
	}
	w.running = false
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("Config watcher error", "error", err)
			}
		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.configFile) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := LoadConfig()
	if err != nil {
		if w.logger != nil {
			w.logger.LogError(err, "Config reload failed, keeping previous configuration",
				"file", w.configFile)
		}
		return
	}

	if w.logger != nil {
		w.logger.Info("Config file reloaded", "file", w.configFile)
	}
	if w.reloadCallback != nil {
		w.reloadCallback(cfg)
	}
}
