package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"sitebuild/internal/observability"
)

// Watcher следит за каталогом постов и вызывает onChange после серии изменений
type Watcher struct {
	fw       *fsnotify.Watcher
	root     string
	delay    time.Duration
	logger   *observability.Logger
	onChange func(ctx context.Context) error
}

func NewWatcher(
	root string,
	delay time.Duration,
	logger *observability.Logger,
	onChange func(ctx context.Context) error,
) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fw:       fw,
		root:     root,
		delay:    delay,
		logger:   logger,
		onChange: onChange,
	}

	if err := w.addTree(root); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// addTree подписывается на каталог и все вложенные, кроме скрытых
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("failed to watch %s: %w", root, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// Run блокируется до отмены ctx. Изменения копятся delay, затем один вызов onChange.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.fw.Close(); err != nil {
			w.logger.Warn("Failed to close watcher", "error", err.Error())
		}
	}()

	w.logger.Info("Watching for changes", "dir", w.root, "debounce", w.delay.String())

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				w.logger.Debug("Change detected", "path", event.Name, "op", event.Op.String())
				pending = time.After(w.delay)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", "error", err.Error())

		case <-pending:
			pending = nil
			if err := w.onChange(ctx); err != nil {
				w.logger.Error("Rebuild after change failed", "error", err.Error())
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") {
				return false
			}
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("Failed to watch new directory", "path", event.Name, "error", err.Error())
			}
			return true
		}
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".html")
}
