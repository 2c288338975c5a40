// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import "time"

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewForm is the phone number and name entry form.
	ViewForm
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewForm:
		return "form"
	default:
		return "unknown"
	}
}

// Operation is one of the directory operations offered by the menu.
type Operation int

const (
	// OpSearch looks up a name.
	OpSearch Operation = iota
	// OpInsert adds a contact.
	OpInsert
	// OpUpdate renames a contact.
	OpUpdate
	// OpDelete removes a contact.
	OpDelete
)

// String returns the menu label of the operation.
func (o Operation) String() string {
	switch o {
	case OpSearch:
		return "Search"
	case OpInsert:
		return "Insert"
	case OpUpdate:
		return "Update"
	case OpDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// NeedsName reports whether the operation takes a name as well as a number.
func (o Operation) NeedsName() bool {
	return o == OpInsert || o == OpUpdate
}

// OperationSelected is sent when the menu picks an operation.
type OperationSelected struct {
	Op Operation
}

// OperationCompleted carries the outcome of a directory call back to the form.
type OperationCompleted struct {
	Op      Operation
	Message string
	Err     error
	Elapsed time.Duration
}

// BackToMenu is sent when a view is dismissed.
type BackToMenu struct{}
