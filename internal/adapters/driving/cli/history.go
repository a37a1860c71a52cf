package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saves written by the editor",
	Long: `Lists the saves written by the editor, newest first.

History is recorded only while history.enabled is true.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one history record",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum records to list (0 for all)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.List(commandContext(cmd), historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		cmd.Println("No saves recorded yet.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "SAVED", "NAME", "EDITS", "OUTPUT")
	for _, r := range records {
		t.Row(
			r.ID,
			r.SavedAt.Local().Format(time.DateTime),
			r.SaveName,
			fmt.Sprintf("%d", r.PlayerPatches+r.PartyPatches),
			r.OutputPath,
		)
	}
	cmd.Println(t.Render())
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	record, err := historyService.Get(commandContext(cmd), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("history record %s not found", args[0])
		}
		return err
	}

	cmd.Printf("ID:             %s\n", record.ID)
	cmd.Printf("Saved at:       %s\n", record.SavedAt.Local().Format(time.RFC3339))
	cmd.Printf("Save name:      %s\n", record.SaveName)
	cmd.Printf("Source:         %s\n", record.SourcePath)
	cmd.Printf("Output:         %s\n", record.OutputPath)
	cmd.Printf("Player edits:   %d\n", record.PlayerPatches)
	cmd.Printf("Party edits:    %d\n", record.PartyPatches)
	return nil
}
