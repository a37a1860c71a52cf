package driving

import (
	"context"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
)

// LoadObserver receives every load progress event. Returning an error aborts
// the load.
type LoadObserver func(ctx context.Context, progress domain.LoadProgress) error

// SaveObserver is told about each save stage before the stage's work starts.
// Returning an error aborts the save.
type SaveObserver func(ctx context.Context, stage domain.SaveStage) error

// SaveLoader reads a save archive into domain records.
type SaveLoader interface {
	// Load runs the load pipeline to completion. observer may be nil.
	Load(ctx context.Context, path string, observer LoadObserver) (*domain.LoadResult, error)
}

// SaveRequest describes one save: the archive to start from and the patches
// to apply to its documents, in order.
type SaveRequest struct {
	ArchivePath   string
	PlayerPatches []jsondoc.Patch
	PartyPatches  []jsondoc.Patch
}

// SaveWriter writes an edited copy of a save archive.
type SaveWriter interface {
	// Save runs the save pipeline to completion. observer may be nil.
	Save(ctx context.Context, req SaveRequest, observer SaveObserver) (*domain.SaveResult, error)
}
