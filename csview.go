// Package csview is a terminal viewer for comma-delimited files: it
// loads a file into an in-memory table and shows it as a scrollable,
// sortable grid with a per-row detail screen.
package csview

import (
	nt "github.com/nick-f925/csv-editor/entity"
)

// Version is reported by the cli's version flag.
const Version = "0.1.0"

// Store specifies a loaded dataset for viewing.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// HeaderNames returns one display label per column
	HeaderNames() []string
	// NumCols returns the number of columns
	NumCols() int
	// NumRows returns the number of data rows
	NumRows() int
	// Rows returns the data rows in insertion order
	Rows() []nt.Row
	// ColWidth returns the widest cell width in column c
	ColWidth(c int) int
	// HeaderWidth returns the width of header cell c
	HeaderWidth(c int) int
	// RowIDWidth returns the width of the widest rowid
	RowIDWidth() int
}
