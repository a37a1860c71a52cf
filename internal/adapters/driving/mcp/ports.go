package mcp

import (
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server exposes.
type Ports struct {
	// Loader reads saves. Required.
	Loader driving.SaveLoader

	// Writer writes edited copies. Without it the edit tool is not offered.
	Writer driving.SaveWriter

	// History lists completed saves. Without it history tools and
	// resources are not offered.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Loader == nil {
		return ErrMissingSaveLoader
	}
	return nil
}
