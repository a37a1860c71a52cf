package gamedata

import (
	"fmt"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
)

// Resource names a kingdom resource pool field.
type Resource string

// Kingdom resources.
const (
	Finances  Resource = "finances"
	Materials Resource = "materials"
	Favors    Resource = "favors"
	Mana      Resource = "mana"
)

// Resources lists every editable kingdom resource.
var Resources = []Resource{Finances, Materials, Favors, Mana}

var resourceFields = map[Resource]jsondoc.Pointer{
	Finances:  "/m_Finances",
	Materials: "/m_Materials",
	Favors:    "/m_Favors",
	Mana:      "/m_Mana",
}

// MoneyPatch sets the player's gold.
func MoneyPatch(player domain.Player, value uint64) jsondoc.Patch {
	if player.ID == "" {
		return jsondoc.AtPointer(moneyPointer, value)
	}
	return jsondoc.AtIdentifierPointer(jsondoc.Identifier(player.ID), moneyPointer, value)
}

// ResourcePatch sets one kingdom resource. perTurn selects the per-turn
// income instead of the current stock.
func ResourcePatch(player domain.Player, resource Resource, perTurn bool, value uint64) (jsondoc.Patch, error) {
	field, ok := resourceFields[resource]
	if !ok {
		return nil, fmt.Errorf("%w: unknown resource %q", domain.ErrInvalidInput, resource)
	}
	if player.Kingdom == nil {
		return nil, fmt.Errorf("%w: the crusade has not started", domain.ErrUnsupportedField)
	}

	pool := player.Kingdom.Resources
	if perTurn {
		pool = player.Kingdom.ResourcesPerTurn
	}
	if pool.ID == "" {
		return nil, fmt.Errorf("%w: resource pool has no identifier", domain.ErrUnsupportedField)
	}
	return jsondoc.AtIdentifierPointer(jsondoc.Identifier(pool.ID), field, value), nil
}

// ExperiencePatch sets a character's experience points.
func ExperiencePatch(c domain.Character, value uint64) (jsondoc.Patch, error) {
	return characterPatch(c, experiencePointer, value)
}

// MythicExperiencePatch sets a character's mythic experience. Characters
// without mythic progression cannot be edited.
func MythicExperiencePatch(c domain.Character, value uint64) (jsondoc.Patch, error) {
	if c.MythicExperience == nil {
		return nil, fmt.Errorf("%w: %s has no mythic progression", domain.ErrUnsupportedField, DisplayName(c))
	}
	return characterPatch(c, mythicExperiencePointer, value)
}

func characterPatch(c domain.Character, rel jsondoc.Pointer, value uint64) (jsondoc.Patch, error) {
	if c.ID == "" {
		return nil, fmt.Errorf("%w: character %q has no identifier", domain.ErrUnsupportedField, DisplayName(c))
	}
	return jsondoc.AtIdentifierPointer(jsondoc.Identifier(c.ID), rel, value), nil
}

// StatPatch sets the base value of one of the character's stats.
func StatPatch(c domain.Character, statType string, value uint64) (jsondoc.Patch, error) {
	stat := c.FindStat(statType)
	if stat == nil {
		return nil, fmt.Errorf("%w: %s has no stat %q", domain.ErrNotFound, DisplayName(c), statType)
	}
	if stat.BaseValue == nil || stat.ID == "" {
		return nil, fmt.Errorf("%w: stat %q has no base value", domain.ErrUnsupportedField, statType)
	}
	return jsondoc.AtIdentifierPointer(jsondoc.Identifier(stat.ID), baseValuePointer, value), nil
}

// DisplayName is the character's custom name, or its blueprint when unnamed.
func DisplayName(c domain.Character) string {
	if c.Name != "" {
		return c.Name
	}
	return c.Blueprint
}

// FindCharacter looks a character up by display name or identifier.
func FindCharacter(party domain.Party, key string) (domain.Character, error) {
	for _, c := range party.Characters {
		if c.ID == key || DisplayName(c) == key {
			return c, nil
		}
	}
	return domain.Character{}, fmt.Errorf("%w: character %q", domain.ErrNotFound, key)
}
