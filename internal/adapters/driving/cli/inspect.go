package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/services"
	"github.com/custodia-labs/wotr-save-editor/internal/gamedata"
)

var inspectStats bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <save>",
	Short: "Show the contents of a save game",
	Long: `Loads a save archive and prints its header, the player's gold and crusade
resources, and the party members.

A bare file name is looked up in saves.directory when it does not exist in
the current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectStats, "stats", false, "Also list every character's stats")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if saveLoader == nil {
		return errors.New("save loader not configured")
	}

	result, err := loadSave(cmd, resolveSavePath(args[0]))
	if err != nil {
		return err
	}

	printSave(cmd, result, inspectStats)
	return nil
}

func printSave(cmd *cobra.Command, result *domain.LoadResult, withStats bool) {
	cmd.Println()
	cmd.Printf("Save: %s\n", result.Header.Name)
	if result.Header.CompatibilityVersion != 0 {
		cmd.Printf("Compatibility version: %d\n", result.Header.CompatibilityVersion)
	}
	cmd.Printf("Archive: %s\n", result.ArchivePath)
	cmd.Println()

	cmd.Println("[Player]")
	cmd.Printf("  Money: %d\n", result.Player.Money)
	if k := result.Player.Kingdom; k != nil {
		cmd.Printf("  Resources: %s\n", formatResources(k.Resources))
		cmd.Printf("  Per turn:  %s\n", formatResources(k.ResourcesPerTurn))
	} else {
		cmd.Println("  Kingdom: (not founded)")
	}
	cmd.Println()

	cmd.Printf("[Party] %d characters\n", len(result.Party.Characters))
	for _, c := range result.Party.Characters {
		line := fmt.Sprintf("  %-24s id %-6s xp %d", gamedata.DisplayName(c), c.ID, c.Experience)
		if c.MythicExperience != nil {
			line += fmt.Sprintf("  mythic %d", *c.MythicExperience)
		}
		cmd.Println(line)

		if !withStats {
			continue
		}
		for _, s := range c.Stats {
			if s.BaseValue == nil {
				continue
			}
			cmd.Printf("      %-28s %d\n", s.Type, *s.BaseValue)
		}
	}
}

func formatResources(r domain.KingdomResources) string {
	return fmt.Sprintf("finances %d, materials %d, favors %d, mana %d",
		r.Finances, r.Materials, r.Favors, r.Mana)
}

// resolveSavePath looks a bare save name up in the configured saves
// directory when it is not found as given.
func resolveSavePath(arg string) string {
	if _, err := os.Stat(arg); err == nil || filepath.IsAbs(arg) || strings.ContainsRune(arg, os.PathSeparator) {
		return arg
	}
	if settingsService == nil {
		return arg
	}
	settings, err := settingsService.Get()
	if err != nil || settings.SavesDirectory == "" {
		return arg
	}

	candidate := filepath.Join(settings.SavesDirectory, arg)
	if filepath.Ext(candidate) == "" {
		candidate += services.SaveExtension
	}
	return candidate
}
