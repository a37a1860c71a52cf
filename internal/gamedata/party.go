package gamedata

import (
	"maps"
	"slices"
	"strconv"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
)

const (
	entityDataPointer jsondoc.Pointer = "/m_EntityData"
	unitEntityType                    = "Kingmaker.EntitySystem.Entities.UnitEntityData, Assembly-CSharp"

	statsPointer            jsondoc.Pointer = "/Descriptor/Stats"
	customNamePointer       jsondoc.Pointer = "/Descriptor/CustomName"
	blueprintPointer        jsondoc.Pointer = "/Descriptor/Blueprint"
	experiencePointer       jsondoc.Pointer = "/Descriptor/Progression/Experience"
	mythicExperiencePointer jsondoc.Pointer = "/Descriptor/Progression/MythicExperience"
	baseValuePointer        jsondoc.Pointer = "/m_BaseValue"
)

// ReadParty projects party.json. Only unit entities are kept.
func ReadParty(doc *jsondoc.Document) (domain.Party, error) {
	entities, err := jsondoc.Array(doc.Root(), entityDataPointer)
	if err != nil {
		return domain.Party{}, err
	}

	var party domain.Party
	for i := range entities {
		at, err := canonical(doc, entityDataPointer.Child(strconv.Itoa(i)))
		if err != nil {
			return domain.Party{}, err
		}

		entityType, err := optional[string](doc, at.Child("$type"))
		if err != nil {
			return domain.Party{}, err
		}
		if entityType == nil || *entityType != unitEntityType {
			continue
		}

		character, err := readCharacter(doc, at)
		if err != nil {
			return domain.Party{}, err
		}
		party.Characters = append(party.Characters, character)
	}
	return party, nil
}

func readCharacter(doc *jsondoc.Document, at jsondoc.Pointer) (domain.Character, error) {
	var c domain.Character
	var err error

	if c.ID, err = identifierAt(doc, at); err != nil {
		return c, err
	}
	if c.Blueprint, err = jsondoc.Get[string](doc.Root(), at.Join(blueprintPointer)); err != nil {
		return c, err
	}

	name, err := optional[string](doc, at.Join(customNamePointer))
	if err != nil {
		return c, err
	}
	if name != nil {
		c.Name = *name
	}

	if c.Experience, err = jsondoc.Get[uint64](doc.Root(), at.Join(experiencePointer)); err != nil {
		return c, err
	}
	if c.MythicExperience, err = optional[uint64](doc, at.Join(mythicExperiencePointer)); err != nil {
		return c, err
	}

	c.Stats, err = readStats(doc, at.Join(statsPointer))
	return c, err
}

type statJSON struct {
	ID        string  `json:"$id"`
	Type      *string `json:"Type"`
	BaseValue *uint64 `json:"m_BaseValue"`
}

func readStats(doc *jsondoc.Document, at jsondoc.Pointer) ([]domain.Stat, error) {
	obj, err := jsondoc.Object(doc.Root(), at)
	if err != nil {
		return nil, err
	}

	var stats []domain.Stat
	for _, key := range slices.Sorted(maps.Keys(obj)) {
		if key == jsondoc.IDField || jsondoc.KindOf(obj[key]) != jsondoc.KindObject {
			continue
		}

		statAt, err := canonical(doc, at.Child(key))
		if err != nil {
			return nil, err
		}
		raw, err := jsondoc.Get[statJSON](doc.Root(), statAt)
		if err != nil {
			return nil, err
		}
		if raw.Type == nil {
			continue
		}
		stats = append(stats, domain.Stat{ID: raw.ID, Type: *raw.Type, BaseValue: raw.BaseValue})
	}
	return stats, nil
}
