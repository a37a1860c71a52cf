package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
	"github.com/custodia-labs/wotr-save-editor/internal/logger"
)

// openArchive opens the archive at path and checks that every required
// document is present before anything is extracted.
func openArchive(ctx context.Context, repo driven.SaveRepository, path string) (driven.SaveArchive, error) {
	archive, err := repo.Open(ctx, path)
	if err != nil {
		return nil, domain.NewSaveError(domain.ErrorKindArchive, "", err)
	}

	present := make(map[string]bool)
	for _, name := range archive.Names() {
		present[name] = true
	}
	for _, name := range domain.RequiredMembers {
		if !present[name] {
			return nil, domain.NewSaveError(domain.ErrorKindArchive, name, domain.ErrMissingMember)
		}
	}
	return archive, nil
}

// extractDocument parses and indexes one member.
func extractDocument(archive driven.SaveArchive, member string) (*jsondoc.Document, error) {
	data, err := archive.ReadMember(member)
	if err != nil {
		return nil, domain.NewSaveError(domain.ErrorKindArchive, member, err)
	}

	doc, err := jsondoc.Parse(data)
	if err != nil {
		return nil, domain.NewSaveError(domain.ErrorKindDeserialization, member, err)
	}
	logger.Debug("Indexed %s: %d bytes, %d identifiers", member, len(data), doc.Len())
	return doc, nil
}

// documentError classifies a failure reading or patching a member's tree.
// Shape problems are reported as deserialization failures and addressing
// problems as JSON failures.
func documentError(member string, err error) error {
	if errors.Is(err, jsondoc.ErrTypeMismatch) || errors.Is(err, jsondoc.ErrDeserialization) {
		return domain.NewSaveError(domain.ErrorKindDeserialization, member, err)
	}
	return domain.NewSaveError(domain.ErrorKindJSON, member, err)
}

// applyPatches applies patches to doc in order.
func applyPatches(doc *jsondoc.Document, member string, patches []jsondoc.Patch) error {
	for i, p := range patches {
		if p == nil {
			continue
		}
		if err := doc.Patch(p); err != nil {
			return documentError(member, fmt.Errorf("patch %d (%s): %w", i+1, p, err))
		}
	}
	return nil
}

// canceled checks ctx between stages.
func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return domain.NewSaveError(domain.ErrorKindCanceled, "", err)
	}
	return nil
}

// observerError wraps an error returned by a progress observer.
func observerError(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return domain.NewSaveError(domain.ErrorKindCanceled, "", err)
	}
	return domain.NewSaveError(domain.ErrorKindNotifications, "", err)
}
