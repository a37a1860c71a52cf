package services

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
	"github.com/custodia-labs/wotr-save-editor/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService reports save archives changing in a directory.
type WatchService struct {
	watcher driven.SaveWatcher
}

// NewWatchService creates a watch service over watcher.
func NewWatchService(watcher driven.SaveWatcher) *WatchService {
	return &WatchService{watcher: watcher}
}

// Watch streams events for .zks files in dir until ctx is cancelled. The
// editor's own temporary files are skipped.
func (s *WatchService) Watch(ctx context.Context, dir string) (<-chan domain.SaveFileEvent, <-chan error, error) {
	raw, rawErrs, err := s.watcher.Watch(ctx, dir)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Watching %s", dir)

	events := make(chan domain.SaveFileEvent)
	go func() {
		defer close(events)
		for ev := range raw {
			if !isSaveFile(ev.Path) {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, rawErrs, nil
}

func isSaveFile(path string) bool {
	base := filepath.Base(path)
	return strings.EqualFold(filepath.Ext(base), SaveExtension) && !strings.HasPrefix(base, ".")
}
