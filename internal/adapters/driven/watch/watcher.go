// Package watch implements driven.SaveWatcher with fsnotify.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
	"github.com/custodia-labs/wotr-save-editor/internal/logger"
)

// Verify interface compliance.
var _ driven.SaveWatcher = (*Watcher)(nil)

// Watcher watches a single directory, non-recursively.
type Watcher struct {
	now func() time.Time
}

// New creates a watcher.
func New() *Watcher {
	return &Watcher{now: time.Now}
}

// Watch starts watching dir. Events and errors are delivered until ctx is
// cancelled, after which both channels are closed.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan domain.SaveFileEvent, <-chan error, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	events := make(chan domain.SaveFileEvent)
	errs := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errs)
		defer fw.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				op, relevant := convertOp(event.Op)
				if !relevant {
					continue
				}
				logger.Debug("fsnotify: %s %s", event.Op, event.Name)

				select {
				case events <- domain.SaveFileEvent{Path: event.Name, Op: op, At: w.now()}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				// Dropped when the previous error is still unread.
				select {
				case errs <- err:
				default:
					logger.Warn("Watcher error dropped: %v", err)
				}
			}
		}
	}()

	return events, errs, nil
}

// convertOp maps fsnotify operations onto save file operations. Attribute
// changes are not reported.
func convertOp(op fsnotify.Op) (domain.SaveFileOp, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return domain.SaveFileCreated, true
	case op.Has(fsnotify.Write):
		return domain.SaveFileWritten, true
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return domain.SaveFileRemoved, true
	default:
		return "", false
	}
}
