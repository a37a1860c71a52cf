// Package cli implements the wotr-editor command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
	"github.com/custodia-labs/wotr-save-editor/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services used by the commands. Wired by SetServices.
var (
	saveLoader      driving.SaveLoader
	saveWriter      driving.SaveWriter
	historyService  driving.HistoryService
	watchService    driving.WatchService
	settingsService driving.SettingsService
)

var (
	verbose      bool
	progressFlag string
)

var rootCmd = &cobra.Command{
	Use:   "wotr-editor",
	Short: "Edit Pathfinder: Wrath of the Righteous save games",
	Long: `wotr-editor reads and edits Pathfinder: Wrath of the Righteous save archives.

Edits are never written over the original save. Every save produces a new
archive next to the original, named after it with a copy suffix.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&progressFlag, "progress", "",
		"Progress display: auto, bar or plain (default from ui.progress)")
}

// Services holds the driving ports the commands run against.
type Services struct {
	Loader   driving.SaveLoader
	Writer   driving.SaveWriter
	History  driving.HistoryService
	Watch    driving.WatchService
	Settings driving.SettingsService
}

// SetServices wires the commands to their services.
func SetServices(s Services) {
	saveLoader = s.Loader
	saveWriter = s.Writer
	historyService = s.History
	watchService = s.Watch
	settingsService = s.Settings
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx. Cancelling ctx stops a
// running load, save or watch.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
