package driving

import (
	"context"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

// WatchService reports save files appearing or changing.
type WatchService interface {
	// Watch streams events for save archives in dir until ctx is cancelled.
	Watch(ctx context.Context, dir string) (<-chan domain.SaveFileEvent, <-chan error, error)
}
