package entity

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Unassigned is the rowid of a row that was never inserted into a
// table, notably the header row.
const Unassigned int64 = -1

// Row is an ordered sequence of cells with a stable identity assigned
// when the row enters a table.
type Row struct {
	cells []Cell
	rowid int64
}

// FromLine splits one line of text on every comma and trims each
// field into a cell. There is no quoting or escaping; k delimiters
// always yield k+1 cells, so an empty line yields one empty cell.
func FromLine(line string) Row {
	row := Row{rowid: Unassigned}
	for _, term := range strings.Split(line, ",") {
		row.AddCell(NewCell(term))
	}
	return row
}

// AddCell appends a cell during construction.
func (row *Row) AddCell(cell Cell) {
	row.cells = append(row.cells, cell)
}

// SetCell replaces the cell at position c, the only mutation allowed
// after construction.
func (row *Row) SetCell(c int, text string) {
	row.cells[c] = NewCell(text)
}

// Assign sets the rowid, called once when the row enters a table.
func (row *Row) Assign(rowid int64) {
	row.rowid = rowid
}

// RowID returns the row's identity, Unassigned for the header.
func (row Row) RowID() int64 {
	return row.rowid
}

// RowIDString returns the row's identity as display text.
func (row Row) RowIDString() string {
	return strconv.FormatInt(row.rowid, 10)
}

// NumCols returns the number of cells in the row.
func (row Row) NumCols() int {
	return len(row.cells)
}

// CellWidth returns the display width of the cell at position c, or
// zero when the row is too short to have one.
func (row Row) CellWidth(c int) int {
	if c < 0 || c >= len(row.cells) {
		return 0
	}
	return row.cells[c].Width()
}

// TryGet returns the text of the cell at position c, or missing when
// the row is too short to have one.
func (row Row) TryGet(c int, missing string) string {
	if c < 0 || c >= len(row.cells) {
		return missing
	}
	return row.cells[c].Value()
}

// Strings returns the cell texts in order.
func (row Row) Strings() []string {
	return lo.Map(row.cells, func(cl Cell, _ int) string {
		return cl.Value()
	})
}

// Field returns the display text of the given column: the rowid as
// text for the rowid column, otherwise the cell text with missing
// cells reading as the supplied placeholder.
func (row Row) Field(col ColumnID, missing string) string {
	if col.Kind == RowIDColumn {
		return row.RowIDString()
	}
	return row.TryGet(col.Pos, missing)
}

// Compare orders two rows by the given column: numerically on rowid
// for the rowid column, lexically on cell text otherwise. Missing and
// out-of-range cells compare as the placeholder, so the order is total
// and consistent with Field for any column identity.
func Compare(a, b Row, col ColumnID, missing string) int {
	if col.Kind == RowIDColumn {
		switch {
		case a.rowid < b.rowid:
			return -1
		case a.rowid > b.rowid:
			return 1
		}
		return 0
	}

	return strings.Compare(a.TryGet(col.Pos, missing), b.TryGet(col.Pos, missing))
}
