package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/logger"
)

var watchInspect bool

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Report save games as the game writes them",
	Long: `Watches a saves directory and prints a line whenever a save archive is
created, rewritten or removed. Without a directory argument saves.directory
is watched.

Stop with Ctrl+C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchInspect, "inspect", false, "Load each new save and print its name")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	dir, err := watchDir(args)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	events, errs, err := watchService.Watch(ctx, dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	cmd.Printf("Watching %s\n", dir)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			cmd.Printf("%s %-8s %s\n", ev.At.Local().Format("15:04:05"), ev.Op, filepath.Base(ev.Path))
			if watchInspect && ev.Op != domain.SaveFileRemoved {
				describeSave(cmd, ev.Path)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

func describeSave(cmd *cobra.Command, path string) {
	if saveLoader == nil {
		return
	}
	result, err := saveLoader.Load(commandContext(cmd), path, nil)
	if err != nil {
		cmd.Printf("         could not load: %v\n", err)
		return
	}
	cmd.Printf("         %q, %d characters, %d gold\n",
		result.Header.Name, len(result.Party.Characters), result.Player.Money)
}

func watchDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.SavesDirectory != "" {
			return settings.SavesDirectory, nil
		}
	}
	return "", fmt.Errorf("%w: no directory given and saves.directory is not set", domain.ErrInvalidInput)
}
