package keyconfig

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/weykon/agent-hand/internal/logging"
)

var watchLog = logging.ForComponent(logging.CompKeyConfig)

// Watcher reloads the key/detection config from disk whenever its source
// file changes, so a long-running switcher process picks up edits without
// a restart.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	onChange func(*File)
}

// NewWatcher watches whichever config path Load() would have resolved.
// Returns (nil, nil) if no config file exists yet — there's nothing to
// watch until the user creates one.
func NewWatcher(onChange func(*File)) (*Watcher, error) {
	path, err := resolvedPath()
	if err != nil || path == "" {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{watcher: fw, path: path, onChange: onChange}, nil
}

// Start blocks, dispatching reloads until Stop is called. Run it in a
// goroutine.
func (w *Watcher) Start() {
	var debounce *time.Timer
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(150*time.Millisecond, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			watchLog.Warn("config_watch_error", slog.String("error", err.Error()))
		}
	}
}

// Stop releases the underlying inotify/kqueue handle.
func (w *Watcher) Stop() {
	_ = w.watcher.Close()
}

func (w *Watcher) reload() {
	cfg, err := Load()
	if err != nil {
		watchLog.Warn("config_reload_failed", slog.String("path", w.path), slog.String("error", err.Error()))
		return
	}
	watchLog.Info("config_reloaded", slog.String("path", w.path))
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
