package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
	"github.com/custodia-labs/wotr-save-editor/internal/gamedata"
	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
	"github.com/custodia-labs/wotr-save-editor/internal/logger"
)

// Ensure Saver implements the interface.
var _ driving.SaveWriter = (*Saver)(nil)

// Saver writes edited copies of save archives.
type Saver struct {
	repo    driven.SaveRepository
	history driven.HistoryStore
	naming  Naming
	now     func() time.Time
}

// NewSaver creates a saver. history may be nil to skip recording.
func NewSaver(repo driven.SaveRepository, history driven.HistoryStore, naming Naming) *Saver {
	if naming.MaxCopies < 1 {
		naming.MaxCopies = 1
	}
	return &Saver{
		repo:    repo,
		history: history,
		naming:  naming,
		now:     time.Now,
	}
}

// Save runs the ten save stages in order. Each stage is reported to observer
// before its work starts; the first failure ends the save. The source
// archive is never modified and the output file only appears in the last
// stage.
func (s *Saver) Save(ctx context.Context, req driving.SaveRequest, observer driving.SaveObserver) (*domain.SaveResult, error) {
	logger.Section("Save")
	logger.Debug("Archive: %s, player patches: %d, party patches: %d",
		req.ArchivePath, len(req.PlayerPatches), len(req.PartyPatches))

	run := &saveRun{saver: s, req: req}
	steps := []struct {
		stage domain.SaveStage
		do    func(context.Context) error
	}{
		{domain.SaveLoadingArchive, run.loadArchive},
		{domain.SaveExtractingPlayer, run.extract(domain.PlayerMember, &run.player)},
		{domain.SaveExtractingParty, run.extract(domain.PartyMember, &run.party)},
		{domain.SaveExtractingHeader, run.extract(domain.HeaderMember, &run.header)},
		{domain.SaveApplyingPatches, run.applyPatches},
		{domain.SaveSerializingJSON, run.serialize},
		{domain.SaveWritingArchive, run.copyMembers},
		{domain.SaveWritingCustomFiles, run.writeDocuments},
		{domain.SaveFinishingArchive, run.finish},
		{domain.SaveWritingToDisk, run.writeToDisk},
	}

	for _, step := range steps {
		if err := canceled(ctx); err != nil {
			return nil, err
		}
		logger.Debug("Save stage %d/%d: %s", step.stage.Number()+1, domain.SaveStageCount, step.stage)

		if observer != nil {
			if err := observer(ctx, step.stage); err != nil {
				return nil, observerError(ctx, err)
			}
		}
		if err := step.do(ctx); err != nil {
			logger.Warn("Save failed at %s: %v", step.stage, err)
			return nil, err
		}
	}

	result := &domain.SaveResult{OutputPath: run.outputPath, SaveName: run.saveName}
	logger.Info("Saved %q to %s", run.saveName, run.outputPath)

	if s.history != nil {
		record := domain.SaveRecord{
			ID:            uuid.NewString(),
			SourcePath:    req.ArchivePath,
			OutputPath:    run.outputPath,
			SaveName:      run.saveName,
			PlayerPatches: countChanges(req.PlayerPatches),
			PartyPatches:  countChanges(req.PartyPatches),
			SavedAt:       s.now().UTC(),
		}
		if err := s.history.Record(ctx, record); err != nil {
			logger.Warn("Failed to record save history: %v", err)
		} else {
			result.RecordID = record.ID
		}
	}
	return result, nil
}

// saveRun holds what one save has produced so far.
type saveRun struct {
	saver *Saver
	req   driving.SaveRequest

	archive               driven.SaveArchive
	player, party, header *jsondoc.Document

	outputPath string
	saveName   string

	serialized map[string][]byte
	writer     driven.ArchiveWriter
	output     []byte
}

func (r *saveRun) loadArchive(ctx context.Context) error {
	archive, err := openArchive(ctx, r.saver.repo, r.req.ArchivePath)
	if err != nil {
		return err
	}
	r.archive = archive
	return nil
}

func (r *saveRun) extract(member string, dst **jsondoc.Document) func(context.Context) error {
	return func(context.Context) error {
		doc, err := extractDocument(r.archive, member)
		if err != nil {
			return err
		}
		*dst = doc
		return nil
	}
}

// applyPatches also picks the output name, since the header's display name
// is numbered the same way as the output file.
func (r *saveRun) applyPatches(context.Context) error {
	if err := applyPatches(r.player, domain.PlayerMember, r.req.PlayerPatches); err != nil {
		return err
	}
	if err := applyPatches(r.party, domain.PartyMember, r.req.PartyPatches); err != nil {
		return err
	}

	header, err := gamedata.ReadHeader(r.header)
	if err != nil {
		return documentError(domain.HeaderMember, err)
	}

	naming := r.saver.naming
	path, attempt, err := naming.findOutput(r.saver.repo.Exists, r.req.ArchivePath)
	if err != nil {
		return err
	}
	r.outputPath = path
	r.saveName = naming.EditedName(header.Name, attempt)

	return applyPatches(r.header, domain.HeaderMember, []jsondoc.Patch{gamedata.HeaderNamePatch(r.saveName)})
}

func (r *saveRun) serialize(context.Context) error {
	docs := map[string]*jsondoc.Document{
		domain.HeaderMember: r.header,
		domain.PartyMember:  r.party,
		domain.PlayerMember: r.player,
	}
	r.serialized = make(map[string][]byte, len(docs))
	for member, doc := range docs {
		data, err := doc.Bytes()
		if err != nil {
			return domain.NewSaveError(domain.ErrorKindDeserialization, member, err)
		}
		r.serialized[member] = data
	}
	return nil
}

func (r *saveRun) copyMembers(context.Context) error {
	r.writer = r.archive.Rewrite()
	copied, err := r.writer.CopyMembers(domain.IsRequiredMember)
	if err != nil {
		return domain.NewSaveError(domain.ErrorKindArchive, "", err)
	}
	logger.Debug("Copied %d unchanged members", copied)
	return nil
}

func (r *saveRun) writeDocuments(context.Context) error {
	for _, member := range domain.RequiredMembers {
		if err := r.writer.WriteStored(member, r.serialized[member]); err != nil {
			return domain.NewSaveError(domain.ErrorKindArchive, member, err)
		}
	}
	return nil
}

func (r *saveRun) finish(context.Context) error {
	data, err := r.writer.Finish()
	if err != nil {
		return domain.NewSaveError(domain.ErrorKindArchive, "", err)
	}
	r.output = data
	return nil
}

func (r *saveRun) writeToDisk(ctx context.Context) error {
	if err := r.saver.repo.WriteFile(ctx, r.outputPath, r.output); err != nil {
		return domain.NewSaveError(domain.ErrorKindIO, "", err)
	}
	return nil
}

// countChanges counts the patches that change something.
func countChanges(patches []jsondoc.Patch) int {
	n := 0
	for _, p := range patches {
		if p != nil && !jsondoc.IsNoChange(p) {
			n++
		}
	}
	return n
}
