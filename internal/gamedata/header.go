package gamedata

import (
	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/jsondoc"
)

const (
	headerNamePointer    jsondoc.Pointer = "/Name"
	headerVersionPointer jsondoc.Pointer = "/CompatibilityVersion"
)

// ReadHeader projects header.json.
func ReadHeader(doc *jsondoc.Document) (domain.Header, error) {
	name, err := jsondoc.Get[string](doc.Root(), headerNamePointer)
	if err != nil {
		return domain.Header{}, err
	}

	version, err := optional[uint64](doc, headerVersionPointer)
	if err != nil {
		return domain.Header{}, err
	}

	h := domain.Header{Name: name}
	if version != nil {
		h.CompatibilityVersion = *version
	}
	return h, nil
}

// HeaderNamePatch renames the save as shown in the game's load menu.
func HeaderNamePatch(name string) jsondoc.Patch {
	return jsondoc.AtPointer(headerNamePointer, name)
}
