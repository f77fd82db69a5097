package entity

// ColumnKind discriminates the rowid pseudo-column from data columns.
type ColumnKind int

const (
	// RowIDColumn is the synthetic leftmost column showing insertion order.
	RowIDColumn ColumnKind = iota
	// DataColumn is a parsed column at a fixed position.
	DataColumn
)

// ColumnID identifies a column for field lookup and sort dispatch.
type ColumnID struct {
	Kind ColumnKind
	Pos  int // data column position, unused for the rowid column
}

// RowIDCol returns the identity of the rowid pseudo-column.
func RowIDCol() ColumnID {
	return ColumnID{Kind: RowIDColumn}
}

// DataCol returns the identity of the data column at position c.
func DataCol(c int) ColumnID {
	return ColumnID{Kind: DataColumn, Pos: c}
}

// Alignment is the horizontal alignment of a column's text.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Column describes one column shown by a table panel.
type Column struct {
	ID    ColumnID
	Label string
	Width int
	Align Alignment
}
