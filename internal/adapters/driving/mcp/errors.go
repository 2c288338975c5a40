// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the phone book. It lets AI assistants search and edit the directory
// through tools served over stdio.
package mcp

import "errors"

// ErrMissingDirectoryService is returned when the directory service is not provided.
var ErrMissingDirectoryService = errors.New("mcp: directory service is required")
