// Command wotr-editor edits Pathfinder: Wrath of the Righteous save games.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driven/archive/zipfs"
	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driven/watch"
	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driving/cli"
	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
	"github.com/custodia-labs/wotr-save-editor/internal/core/services"
	"github.com/custodia-labs/wotr-save-editor/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Config: TOML file, in memory when the home directory is unusable.
	var configStore driven.ConfigStore
	if store, err := file.NewConfigStore(""); err == nil {
		configStore = store
	} else {
		logger.Warn("Config file unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read settings: %v\n", err)
		return err
	}

	// History: SQLite, in memory when the database cannot be opened.
	var historyStore driven.HistoryStore
	if store, err := sqlite.NewStore(""); err == nil {
		defer store.Close()
		historyStore = store.HistoryStore()
	} else {
		logger.Warn("History database unavailable, history will not persist: %v", err)
		historyStore = memory.NewHistoryStore()
	}

	repo := zipfs.NewRepository()
	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Loader:   services.NewLoader(repo),
		Writer:   services.NewSaver(repo, recordingStore(settings, historyStore), services.NamingFromSettings(*settings)),
		History:  services.NewHistoryService(historyStore),
		Watch:    services.NewWatchService(watch.New()),
		Settings: settingsService,
	})

	return cli.ExecuteContext(ctx)
}

// recordingStore returns the store the saver records into, or nil when
// history is turned off.
func recordingStore(settings *domain.AppSettings, store driven.HistoryStore) driven.HistoryStore {
	if !settings.HistoryEnabled {
		return nil
	}
	return store
}
