package services

import (
	"context"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
	"github.com/custodia-labs/wotr-save-editor/internal/gamedata"
	"github.com/custodia-labs/wotr-save-editor/internal/logger"
)

// Ensure Loader implements the interface.
var _ driving.SaveLoader = (*Loader)(nil)

// Loader reads save archives into domain records.
type Loader struct {
	repo driven.SaveRepository
}

// NewLoader creates a loader over repo.
func NewLoader(repo driven.SaveRepository) *Loader {
	return &Loader{repo: repo}
}

// Load runs every stage of the load pipeline, reporting each one to
// observer, and returns the loaded save.
func (l *Loader) Load(ctx context.Context, path string, observer driving.LoadObserver) (*domain.LoadResult, error) {
	logger.Section("Load")
	logger.Debug("Archive: %s", path)

	run := l.Start(path)
	for {
		progress, _ := run.Next(ctx)
		logger.Debug("Load stage: %s (%d%%)", progress.Stage, progress.Percentage())

		if observer != nil {
			if err := observer(ctx, progress); err != nil {
				return nil, observerError(ctx, err)
			}
		}

		switch progress.Stage {
		case domain.LoadDone:
			return progress.Result, nil
		case domain.LoadFailed:
			logger.Warn("Load failed: %v", progress.Err)
			return nil, progress.Err
		}
	}
}

// Start prepares a load of path without doing any I/O. Drive it with Next.
func (l *Loader) Start(path string) *LoadRun {
	return &LoadRun{repo: l.repo, state: loadInitializing{path: path}}
}

// LoadRun is one load in progress.
type LoadRun struct {
	repo     driven.SaveRepository
	state    loadState
	started  bool
	finished bool
}

// Next performs the work of the current stage, moves to the following one
// and reports it. The first call reports the initial stage. After a terminal
// stage has been reported, Next returns false.
func (r *LoadRun) Next(ctx context.Context) (domain.LoadProgress, bool) {
	if r.finished {
		return domain.LoadProgress{}, false
	}
	if r.started {
		if err := canceled(ctx); err != nil {
			r.state = loadFailed{err: err}
		} else {
			r.state = r.state.advance(ctx, r.repo)
		}
	}
	r.started = true

	progress := r.state.progress()
	r.finished = progress.Stage.Terminal()
	return progress, true
}

// loadState is one state of the load pipeline. Each state carries only
// what is known by the time it is entered.
type loadState interface {
	progress() domain.LoadProgress
	advance(ctx context.Context, repo driven.SaveRepository) loadState
}

type loadInitializing struct {
	path string
}

func (s loadInitializing) progress() domain.LoadProgress {
	return domain.LoadProgress{Stage: domain.LoadInitializing}
}

func (s loadInitializing) advance(context.Context, driven.SaveRepository) loadState {
	return loadReadingFile(s)
}

type loadReadingFile struct {
	path string
}

func (s loadReadingFile) progress() domain.LoadProgress {
	return domain.LoadProgress{Stage: domain.LoadReadingFile}
}

func (s loadReadingFile) advance(ctx context.Context, repo driven.SaveRepository) loadState {
	archive, err := openArchive(ctx, repo, s.path)
	if err != nil {
		return loadFailed{err: err}
	}
	return loadReadingParty{archive: archive}
}

type loadReadingParty struct {
	archive driven.SaveArchive
}

func (s loadReadingParty) progress() domain.LoadProgress {
	return domain.LoadProgress{Stage: domain.LoadReadingParty}
}

func (s loadReadingParty) advance(context.Context, driven.SaveRepository) loadState {
	doc, err := extractDocument(s.archive, domain.PartyMember)
	if err != nil {
		return loadFailed{err: err}
	}
	party, err := gamedata.ReadParty(doc)
	if err != nil {
		return loadFailed{err: documentError(domain.PartyMember, err)}
	}
	logger.Debug("Party: %d characters", len(party.Characters))
	return loadReadingPlayer{archive: s.archive, party: party}
}

type loadReadingPlayer struct {
	archive driven.SaveArchive
	party   domain.Party
}

func (s loadReadingPlayer) progress() domain.LoadProgress {
	return domain.LoadProgress{Stage: domain.LoadReadingPlayer}
}

// advance also reads the header, which has no stage of its own.
func (s loadReadingPlayer) advance(context.Context, driven.SaveRepository) loadState {
	doc, err := extractDocument(s.archive, domain.PlayerMember)
	if err != nil {
		return loadFailed{err: err}
	}
	player, err := gamedata.ReadPlayer(doc)
	if err != nil {
		return loadFailed{err: documentError(domain.PlayerMember, err)}
	}

	doc, err = extractDocument(s.archive, domain.HeaderMember)
	if err != nil {
		return loadFailed{err: err}
	}
	header, err := gamedata.ReadHeader(doc)
	if err != nil {
		return loadFailed{err: documentError(domain.HeaderMember, err)}
	}

	return loadDone{result: &domain.LoadResult{
		Header:      header,
		Party:       s.party,
		Player:      player,
		ArchivePath: s.archive.Path(),
	}}
}

type loadDone struct {
	result *domain.LoadResult
}

func (s loadDone) progress() domain.LoadProgress {
	return domain.LoadProgress{Stage: domain.LoadDone, Result: s.result}
}

func (s loadDone) advance(context.Context, driven.SaveRepository) loadState {
	return s
}

type loadFailed struct {
	err error
}

func (s loadFailed) progress() domain.LoadProgress {
	return domain.LoadProgress{Stage: domain.LoadFailed, Err: s.err}
}

func (s loadFailed) advance(context.Context, driven.SaveRepository) loadState {
	return s
}
