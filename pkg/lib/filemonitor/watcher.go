// Package filemonitor re-reads puzzle files as they change on disk.
package filemonitor

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/puzzle-framework/str8ts/pkg/puzzle"
)

// PuzzleWatcher monitors a puzzle file and hands each freshly parsed
// grid to an update function. The file's directory is watched rather
// than the file itself, so editors that replace the file on save keep
// triggering events.
type PuzzleWatcher struct {
	notify   *fsnotify.Watcher
	logger   *logrus.Logger
	path     string
	onUpdate func(puzzle.Grid)

	mutex sync.RWMutex
	grid  puzzle.Grid
}

// NewPuzzleWatcher loads the puzzle at path and sets up monitoring for
// rewrites. The update function runs on the watcher's goroutine.
func NewPuzzleWatcher(logger *logrus.Logger, path string, onUpdate func(puzzle.Grid)) (*PuzzleWatcher, error) {
	path = filepath.Clean(path)
	grid, err := load(path)
	if err != nil {
		return nil, err
	}

	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := notify.Add(filepath.Dir(path)); err != nil {
		notify.Close()
		return nil, err
	}
	logger.Debugf("monitoring path '%v'", path)

	return &PuzzleWatcher{
		notify:   notify,
		logger:   logger,
		path:     path,
		onUpdate: onUpdate,
		grid:     grid,
	}, nil
}

// Grid returns the most recently loaded grid.
func (w *PuzzleWatcher) Grid() puzzle.Grid {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.grid
}

// Run processes events until ctx is done.
func (w *PuzzleWatcher) Run(ctx context.Context) {
	go func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				w.notify.Close() // always returns nil for the error
				w.logger.Debug("terminating watcher")
				return
			case event := <-w.notify.Events:
				w.logger.Debugf("watcher got event: %v", event)
				w.handleUpdate(event)
			case err := <-w.notify.Errors:
				w.logger.Warnf("watcher got error: %v", err)
			}
		}
	}(ctx)
}

func (w *PuzzleWatcher) handleUpdate(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}

	grid, err := load(w.path)
	if err != nil {
		// partial writes parse badly until the editor finishes, so
		// keep the previous grid
		w.logger.Debugf("puzzle not reloaded: %v", err)
		return
	}

	w.mutex.Lock()
	w.grid = grid
	w.mutex.Unlock()

	if w.onUpdate != nil {
		w.onUpdate(grid)
	}
}

func load(path string) (puzzle.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return puzzle.Grid{}, err
	}
	return puzzle.Parse(string(data))
}
