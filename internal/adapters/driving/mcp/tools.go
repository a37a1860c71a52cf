package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
	"github.com/custodia-labs/wotr-save-editor/internal/gamedata"
	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
)

// InspectInput is the input schema for the inspect_save tool.
type InspectInput struct {
	Path string `json:"path" jsonschema:"path to a .zks save archive"`
}

// SaveOutput summarises a loaded save.
type SaveOutput struct {
	Name                 string            `json:"name"`
	CompatibilityVersion uint64            `json:"compatibility_version,omitempty"`
	ArchivePath          string            `json:"archive_path"`
	Money                uint64            `json:"money"`
	Kingdom              *KingdomOutput    `json:"kingdom,omitempty"`
	Characters           []CharacterOutput `json:"characters"`
}

// KingdomOutput holds the crusade resources.
type KingdomOutput struct {
	Resources        ResourcesOutput `json:"resources"`
	ResourcesPerTurn ResourcesOutput `json:"resources_per_turn"`
}

// ResourcesOutput is one set of crusade resources.
type ResourcesOutput struct {
	Finances  uint64 `json:"finances"`
	Materials uint64 `json:"materials"`
	Favors    uint64 `json:"favors"`
	Mana      uint64 `json:"mana"`
}

// CharacterOutput is one party member.
type CharacterOutput struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Blueprint        string       `json:"blueprint"`
	Experience       uint64       `json:"experience"`
	MythicExperience *uint64      `json:"mythic_experience,omitempty"`
	Stats            []StatOutput `json:"stats,omitempty"`
}

// StatOutput is one editable stat.
type StatOutput struct {
	Type      string `json:"type"`
	BaseValue uint64 `json:"base_value"`
}

// CharacterValue assigns a value to one character's field.
type CharacterValue struct {
	Character string `json:"character" jsonschema:"character display name or id"`
	Value     uint64 `json:"value"`
}

// StatValue assigns a stat's base value.
type StatValue struct {
	Character string `json:"character" jsonschema:"character display name or id"`
	Stat      string `json:"stat" jsonschema:"stat type, e.g. Strength"`
	Value     uint64 `json:"value"`
}

// ResourceValue assigns a crusade resource.
type ResourceValue struct {
	Resource string `json:"resource" jsonschema:"one of finances, materials, favors, mana"`
	Value    uint64 `json:"value"`
	PerTurn  bool   `json:"per_turn,omitempty" jsonschema:"set the per-turn income instead of the stock"`
}

// EditInput is the input schema for the edit_save tool.
type EditInput struct {
	Path             string           `json:"path" jsonschema:"path to the .zks save archive to start from"`
	Money            *uint64          `json:"money,omitempty" jsonschema:"new amount of gold"`
	Experience       []CharacterValue `json:"experience,omitempty"`
	MythicExperience []CharacterValue `json:"mythic_experience,omitempty"`
	Stats            []StatValue      `json:"stats,omitempty"`
	Resources        []ResourceValue  `json:"resources,omitempty"`
}

// EditOutput describes the written copy.
type EditOutput struct {
	OutputPath string `json:"output_path"`
	SaveName   string `json:"save_name"`
	RecordID   string `json:"record_id,omitempty"`
	Edits      int    `json:"edits"`
}

// HistoryInput is the input schema for the list_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

// HistoryOutput lists save records.
type HistoryOutput struct {
	Records []RecordOutput `json:"records"`
	Count   int            `json:"count"`
}

// RecordOutput is one completed save.
type RecordOutput struct {
	ID            string `json:"id"`
	SavedAt       string `json:"saved_at"`
	SaveName      string `json:"save_name"`
	SourcePath    string `json:"source_path"`
	OutputPath    string `json:"output_path"`
	PlayerPatches int    `json:"player_patches"`
	PartyPatches  int    `json:"party_patches"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inspect_save",
		Description: "Read a Wrath of the Righteous save: header, gold, crusade resources and party",
	}, s.handleInspect)

	if s.ports.Writer != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name: "edit_save",
			Description: "Write an edited copy of a save next to the original. " +
				"The original archive is never modified",
		}, s.handleEdit)
	}

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_history",
			Description: "List saves written by the editor, newest first",
		}, s.handleHistory)
	}
}

func (s *Server) handleInspect(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InspectInput,
) (*mcp.CallToolResult, SaveOutput, error) {
	result, err := s.ports.Loader.Load(ctx, input.Path, nil)
	if err != nil {
		return nil, SaveOutput{}, err
	}
	return nil, toSaveOutput(result), nil
}

func (s *Server) handleEdit(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EditInput,
) (*mcp.CallToolResult, EditOutput, error) {
	loaded, err := s.ports.Loader.Load(ctx, input.Path, nil)
	if err != nil {
		return nil, EditOutput{}, err
	}

	req, err := buildSaveRequest(loaded, input)
	if err != nil {
		return nil, EditOutput{}, err
	}
	edits := len(req.PlayerPatches) + len(req.PartyPatches)
	if edits == 0 {
		return nil, EditOutput{}, fmt.Errorf("%w: no edits requested", domain.ErrInvalidInput)
	}

	result, err := s.ports.Writer.Save(ctx, req, nil)
	if err != nil {
		return nil, EditOutput{}, err
	}

	return nil, EditOutput{
		OutputPath: result.OutputPath,
		SaveName:   result.SaveName,
		RecordID:   result.RecordID,
		Edits:      edits,
	}, nil
}

func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	records, err := s.ports.History.List(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Records: make([]RecordOutput, len(records)),
		Count:   len(records),
	}
	for i := range records {
		output.Records[i] = toRecordOutput(records[i])
	}
	return nil, output, nil
}

func buildSaveRequest(loaded *domain.LoadResult, input EditInput) (driving.SaveRequest, error) {
	req := driving.SaveRequest{ArchivePath: loaded.ArchivePath}

	if input.Money != nil {
		req.PlayerPatches = append(req.PlayerPatches, gamedata.MoneyPatch(loaded.Player, *input.Money))
	}
	for _, r := range input.Resources {
		patch, err := gamedata.ResourcePatch(loaded.Player, gamedata.Resource(strings.ToLower(r.Resource)), r.PerTurn, r.Value)
		if err != nil {
			return req, err
		}
		req.PlayerPatches = append(req.PlayerPatches, patch)
	}

	add := func(key string, build func(domain.Character) (jsondoc.Patch, error)) error {
		c, err := gamedata.FindCharacter(loaded.Party, key)
		if err != nil {
			return err
		}
		patch, err := build(c)
		if err != nil {
			return err
		}
		req.PartyPatches = append(req.PartyPatches, patch)
		return nil
	}

	for _, v := range input.Experience {
		if err := add(v.Character, func(c domain.Character) (jsondoc.Patch, error) {
			return gamedata.ExperiencePatch(c, v.Value)
		}); err != nil {
			return req, err
		}
	}
	for _, v := range input.MythicExperience {
		if err := add(v.Character, func(c domain.Character) (jsondoc.Patch, error) {
			return gamedata.MythicExperiencePatch(c, v.Value)
		}); err != nil {
			return req, err
		}
	}
	for _, v := range input.Stats {
		if err := add(v.Character, func(c domain.Character) (jsondoc.Patch, error) {
			return gamedata.StatPatch(c, v.Stat, v.Value)
		}); err != nil {
			return req, err
		}
	}

	return req, nil
}

func toSaveOutput(result *domain.LoadResult) SaveOutput {
	out := SaveOutput{
		Name:                 result.Header.Name,
		CompatibilityVersion: result.Header.CompatibilityVersion,
		ArchivePath:          result.ArchivePath,
		Money:                result.Player.Money,
		Characters:           make([]CharacterOutput, 0, len(result.Party.Characters)),
	}
	if k := result.Player.Kingdom; k != nil {
		out.Kingdom = &KingdomOutput{
			Resources:        toResourcesOutput(k.Resources),
			ResourcesPerTurn: toResourcesOutput(k.ResourcesPerTurn),
		}
	}

	for _, c := range result.Party.Characters {
		co := CharacterOutput{
			ID:               c.ID,
			Name:             gamedata.DisplayName(c),
			Blueprint:        c.Blueprint,
			Experience:       c.Experience,
			MythicExperience: c.MythicExperience,
		}
		for _, st := range c.Stats {
			if st.BaseValue != nil {
				co.Stats = append(co.Stats, StatOutput{Type: st.Type, BaseValue: *st.BaseValue})
			}
		}
		out.Characters = append(out.Characters, co)
	}
	return out
}

func toResourcesOutput(r domain.KingdomResources) ResourcesOutput {
	return ResourcesOutput{Finances: r.Finances, Materials: r.Materials, Favors: r.Favors, Mana: r.Mana}
}

func toRecordOutput(r domain.SaveRecord) RecordOutput {
	return RecordOutput{
		ID:            r.ID,
		SavedAt:       r.SavedAt.UTC().Format("2006-01-02T15:04:05Z"),
		SaveName:      r.SaveName,
		SourcePath:    r.SourcePath,
		OutputPath:    r.OutputPath,
		PlayerPatches: r.PlayerPatches,
		PartyPatches:  r.PartyPatches,
	}
}
