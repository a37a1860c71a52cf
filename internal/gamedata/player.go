package gamedata

import (
	"errors"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
)

const (
	moneyPointer            jsondoc.Pointer = "/Money"
	kingdomPointer          jsondoc.Pointer = "/Kingdom"
	resourcesPointer        jsondoc.Pointer = "/Resources"
	resourcesPerTurnPointer jsondoc.Pointer = "/ResourcesPerTurn"
)

// ReadPlayer projects player.json.
func ReadPlayer(doc *jsondoc.Document) (domain.Player, error) {
	var p domain.Player
	var err error

	if p.ID, err = identifierAt(doc, jsondoc.Root); err != nil {
		return p, err
	}
	if p.Money, err = jsondoc.Get[uint64](doc.Root(), moneyPointer); err != nil {
		return p, err
	}

	p.Kingdom, err = readKingdom(doc)
	return p, err
}

func readKingdom(doc *jsondoc.Document) (*domain.Kingdom, error) {
	node, err := jsondoc.Value(doc.Root(), kingdomPointer)
	if errors.Is(err, jsondoc.ErrPointerNotFound) || (err == nil && node == nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	at, err := canonical(doc, kingdomPointer)
	if err != nil {
		return nil, err
	}

	k := &domain.Kingdom{}
	if k.ID, err = identifierAt(doc, at); err != nil {
		return nil, err
	}
	if k.Resources, err = readResources(doc, at.Join(resourcesPointer)); err != nil {
		return nil, err
	}
	if k.ResourcesPerTurn, err = readResources(doc, at.Join(resourcesPerTurnPointer)); err != nil {
		return nil, err
	}
	return k, nil
}

type resourcesJSON struct {
	ID        string `json:"$id"`
	Finances  uint64 `json:"m_Finances"`
	Materials uint64 `json:"m_Materials"`
	Favors    uint64 `json:"m_Favors"`
	Mana      uint64 `json:"m_Mana"`
}

func readResources(doc *jsondoc.Document, p jsondoc.Pointer) (domain.KingdomResources, error) {
	at, err := canonical(doc, p)
	if err != nil {
		return domain.KingdomResources{}, err
	}
	raw, err := jsondoc.Get[resourcesJSON](doc.Root(), at)
	if err != nil {
		return domain.KingdomResources{}, err
	}
	return domain.KingdomResources{
		ID:        raw.ID,
		Finances:  raw.Finances,
		Materials: raw.Materials,
		Favors:    raw.Favors,
		Mana:      raw.Mana,
	}, nil
}
