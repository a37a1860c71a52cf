package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
)

var copyCmd = &cobra.Command{
	Use:   "copy <save>",
	Short: "Write an unedited copy of a save game",
	Long: `Runs the save pipeline without any edits. The copy gets the next free
copy name and an edited display name, which makes it easy to tell apart
in the game's load menu.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	if saveWriter == nil {
		return errors.New("save writer not configured")
	}

	result, err := writeSave(cmd, driving.SaveRequest{ArchivePath: resolveSavePath(args[0])})
	if err != nil {
		return err
	}
	printSaveResult(cmd, result)
	return nil
}
