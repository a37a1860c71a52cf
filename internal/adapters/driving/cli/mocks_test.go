package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
	"github.com/custodia-labs/wotr-save-editor/internal/core/services"
)

// mockLoader implements driving.SaveLoader for testing.
type mockLoader struct {
	result *domain.LoadResult
	err    error
	paths  []string
}

func (m *mockLoader) Load(ctx context.Context, path string, observer driving.LoadObserver) (*domain.LoadResult, error) {
	m.paths = append(m.paths, path)
	emit := func(p domain.LoadProgress) error {
		if observer == nil {
			return nil
		}
		return observer(ctx, p)
	}

	for _, stage := range []domain.LoadStage{
		domain.LoadInitializing, domain.LoadReadingFile, domain.LoadReadingParty, domain.LoadReadingPlayer,
	} {
		if err := emit(domain.LoadProgress{Stage: stage}); err != nil {
			return nil, err
		}
	}
	if m.err != nil {
		_ = emit(domain.LoadProgress{Stage: domain.LoadFailed, Err: m.err})
		return nil, m.err
	}

	result := *m.result
	result.ArchivePath = path
	if err := emit(domain.LoadProgress{Stage: domain.LoadDone, Result: &result}); err != nil {
		return nil, err
	}
	return &result, nil
}

// mockWriter implements driving.SaveWriter for testing.
type mockWriter struct {
	requests []driving.SaveRequest
	result   *domain.SaveResult
	err      error
}

func (m *mockWriter) Save(ctx context.Context, req driving.SaveRequest, observer driving.SaveObserver) (*domain.SaveResult, error) {
	m.requests = append(m.requests, req)
	for stage := domain.SaveLoadingArchive; stage <= domain.SaveWritingToDisk; stage++ {
		if observer != nil {
			if err := observer(ctx, stage); err != nil {
				return nil, err
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockWatch implements driving.WatchService for testing.
type mockWatch struct {
	events []domain.SaveFileEvent
	err    error
	dirs   []string
}

func (m *mockWatch) Watch(_ context.Context, dir string) (<-chan domain.SaveFileEvent, <-chan error, error) {
	m.dirs = append(m.dirs, dir)
	if m.err != nil {
		return nil, nil, m.err
	}
	events := make(chan domain.SaveFileEvent, len(m.events))
	for _, ev := range m.events {
		events <- ev
	}
	close(events)
	errs := make(chan error)
	close(errs)
	return events, errs, nil
}

func uint64Ptr(v uint64) *uint64 { return &v }

func testLoadResult() *domain.LoadResult {
	return &domain.LoadResult{
		Header: domain.Header{Name: "Drezen Siege", CompatibilityVersion: 3},
		Player: domain.Player{
			ID:    "1",
			Money: 1500,
			Kingdom: &domain.Kingdom{
				ID:               "40",
				Resources:        domain.KingdomResources{ID: "41", Finances: 10, Materials: 20, Favors: 30, Mana: 40},
				ResourcesPerTurn: domain.KingdomResources{ID: "42", Finances: 1, Materials: 2, Favors: 3, Mana: 4},
			},
		},
		Party: domain.Party{Characters: []domain.Character{
			{
				ID:               "2",
				Name:             "Seelah",
				Blueprint:        "54be53f0b35bf3c4592a97ae335fe765",
				Experience:       1000,
				MythicExperience: uint64Ptr(5),
				Stats: []domain.Stat{
					{ID: "6", Type: "Strength", BaseValue: uint64Ptr(16)},
					{ID: "7", Type: "AC"},
				},
			},
			{
				ID:         "9",
				Blueprint:  "397b090721c41044ea3220445300e1b8",
				Experience: 800,
			},
		}},
	}
}

type testEnv struct {
	loader   *mockLoader
	writer   *mockWriter
	history  *memory.HistoryStore
	watch    *mockWatch
	settings *services.SettingsService
}

// setupCLITest wires mocks into the command globals and restores them when
// the test ends.
func setupCLITest(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		loader:   &mockLoader{result: testLoadResult()},
		writer:   &mockWriter{result: &domain.SaveResult{OutputPath: "/saves/Quick - Copy.zks", SaveName: "Drezen Siege - Edited"}},
		history:  memory.NewHistoryStore(),
		watch:    &mockWatch{},
		settings: services.NewSettingsService(memory.NewConfigStore()),
	}

	oldLoader, oldWriter, oldHistory, oldWatch, oldSettings :=
		saveLoader, saveWriter, historyService, watchService, settingsService
	SetServices(Services{
		Loader:   env.loader,
		Writer:   env.writer,
		History:  services.NewHistoryService(env.history),
		Watch:    env.watch,
		Settings: env.settings,
	})

	resetFlags()
	progressFlag = string(domain.ProgressPlain)

	t.Cleanup(func() {
		saveLoader, saveWriter, historyService, watchService, settingsService =
			oldLoader, oldWriter, oldHistory, oldWatch, oldSettings
		resetFlags()
	})
	return env
}

func resetFlags() {
	setEdits = edits{}
	inspectStats = false
	historyLimit = 20
	watchInspect = false
	progressFlag = ""
	verbose = false

	var visit func(cmd *cobra.Command)
	visit = func(cmd *cobra.Command) {
		cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		for _, sub := range cmd.Commands() {
			visit(sub)
		}
	}
	visit(rootCmd)
}

// execute runs the root command with args and returns everything printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
