// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// save editor. It lets AI assistants inspect saves, write edited copies and
// read the save history.
package mcp

import "errors"

// ErrMissingSaveLoader is returned when the save loader is not provided.
var ErrMissingSaveLoader = errors.New("mcp: save loader is required")
