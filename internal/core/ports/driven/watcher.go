package driven

import (
	"context"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

// SaveWatcher reports save files appearing or changing in a directory.
type SaveWatcher interface {
	// Watch streams events for dir until ctx is cancelled. Both channels are
	// closed when watching stops.
	Watch(ctx context.Context, dir string) (<-chan domain.SaveFileEvent, <-chan error, error)
}
