// Package message holds the messages panels send up to the root model.
package message

import (
	nt "github.com/nick-f925/csv-editor/entity"
)

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// SelectedMsg reports the selected row, 1-indexed for display
type SelectedMsg struct {
	Row int
}

// SortedMsg reports the active sort order
type SortedMsg struct {
	Label string
	Desc  bool
}

// InspectMsg asks for the detail screen on a row
type InspectMsg struct {
	Row nt.Row
}
