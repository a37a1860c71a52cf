package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
	"github.com/custodia-labs/wotr-save-editor/internal/gamedata"
	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
)

// edits holds the values of the set command's flags.
type edits struct {
	money     uint64
	xp        []string
	mythicXP  []string
	stats     []string
	resources []string
	perTurn   []string
}

var setEdits edits

var setCmd = &cobra.Command{
	Use:   "set <save>",
	Short: "Edit a save game and write it as a copy",
	Long: `Loads a save archive, applies the requested edits and writes the result
as a new archive next to the original. The original is never modified.

Characters are named by their display name or by their $id as shown by
'wotr-editor inspect'.

Examples:
  wotr-editor set "Quick.zks" --money 100000
  wotr-editor set "Quick.zks" --xp Seelah=250000 --stat Seelah:Strength=18
  wotr-editor set "Quick.zks" --resource finances=500 --resource-per-turn mana=20`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	flags := setCmd.Flags()
	flags.Uint64Var(&setEdits.money, "money", 0, "Set the player's gold")
	flags.StringArrayVar(&setEdits.xp, "xp", nil, "Set experience, CHARACTER=VALUE")
	flags.StringArrayVar(&setEdits.mythicXP, "mythic-xp", nil, "Set mythic experience, CHARACTER=VALUE")
	flags.StringArrayVar(&setEdits.stats, "stat", nil, "Set a base stat, CHARACTER:STAT=VALUE")
	flags.StringArrayVar(&setEdits.resources, "resource", nil,
		"Set a crusade resource, NAME=VALUE (finances, materials, favors, mana)")
	flags.StringArrayVar(&setEdits.perTurn, "resource-per-turn", nil, "Set a crusade resource income, NAME=VALUE")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	if saveLoader == nil || saveWriter == nil {
		return errors.New("save services not configured")
	}

	path := resolveSavePath(args[0])
	loaded, err := loadSave(cmd, path)
	if err != nil {
		return err
	}

	req, err := buildSaveRequest(loaded, setEdits, cmd.Flags())
	if err != nil {
		return err
	}
	if len(req.PlayerPatches)+len(req.PartyPatches) == 0 {
		return fmt.Errorf("%w: nothing to change, pass at least one edit flag", domain.ErrInvalidInput)
	}

	result, err := writeSave(cmd, req)
	if err != nil {
		return err
	}
	printSaveResult(cmd, result)
	return nil
}

func buildSaveRequest(loaded *domain.LoadResult, e edits, flags *pflag.FlagSet) (driving.SaveRequest, error) {
	req := driving.SaveRequest{ArchivePath: loaded.ArchivePath}
	player := loaded.Player

	if flags.Changed("money") {
		req.PlayerPatches = append(req.PlayerPatches, gamedata.MoneyPatch(player, e.money))
	}

	pools := []struct {
		perTurn     bool
		assignments []string
	}{{false, e.resources}, {true, e.perTurn}}
	for _, pool := range pools {
		for _, a := range pool.assignments {
			name, value, err := parseAssignment(a)
			if err != nil {
				return req, err
			}
			resource := gamedata.Resource(strings.ToLower(name))
			patch, err := gamedata.ResourcePatch(player, resource, pool.perTurn, value)
			if err != nil {
				return req, err
			}
			req.PlayerPatches = append(req.PlayerPatches, patch)
		}
	}

	for _, a := range e.xp {
		patch, err := characterEdit(loaded.Party, a, gamedata.ExperiencePatch)
		if err != nil {
			return req, err
		}
		req.PartyPatches = append(req.PartyPatches, patch)
	}
	for _, a := range e.mythicXP {
		patch, err := characterEdit(loaded.Party, a, gamedata.MythicExperiencePatch)
		if err != nil {
			return req, err
		}
		req.PartyPatches = append(req.PartyPatches, patch)
	}
	for _, a := range e.stats {
		patch, err := statEdit(loaded.Party, a)
		if err != nil {
			return req, err
		}
		req.PartyPatches = append(req.PartyPatches, patch)
	}

	return req, nil
}

func characterEdit(
	party domain.Party,
	assignment string,
	patch func(domain.Character, uint64) (jsondoc.Patch, error),
) (jsondoc.Patch, error) {
	key, value, err := parseAssignment(assignment)
	if err != nil {
		return nil, err
	}
	c, err := gamedata.FindCharacter(party, key)
	if err != nil {
		return nil, err
	}
	return patch(c, value)
}

func statEdit(party domain.Party, assignment string) (jsondoc.Patch, error) {
	target, value, err := parseAssignment(assignment)
	if err != nil {
		return nil, err
	}
	i := strings.LastIndex(target, ":")
	if i <= 0 || i == len(target)-1 {
		return nil, fmt.Errorf("%w: stat edit %q, want CHARACTER:STAT=VALUE", domain.ErrInvalidInput, assignment)
	}
	c, err := gamedata.FindCharacter(party, target[:i])
	if err != nil {
		return nil, err
	}
	return gamedata.StatPatch(c, target[i+1:], value)
}

// parseAssignment splits KEY=VALUE where VALUE is an unsigned integer.
func parseAssignment(s string) (string, uint64, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 {
		return "", 0, fmt.Errorf("%w: %q, want KEY=VALUE", domain.ErrInvalidInput, s)
	}
	value, err := strconv.ParseUint(strings.TrimSpace(s[i+1:]), 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q: value must be a non-negative integer", domain.ErrInvalidInput, s)
	}
	return strings.TrimSpace(s[:i]), value, nil
}

func printSaveResult(cmd *cobra.Command, result *domain.SaveResult) {
	cmd.Printf("Saved %q to %s\n", result.SaveName, result.OutputPath)
	if result.RecordID != "" {
		cmd.Printf("History record: %s\n", result.RecordID)
	}
}
