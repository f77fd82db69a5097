package entity

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single text value within a row, trimmed of surrounding
// whitespace when constructed.
type Cell struct {
	value string
}

// NewCell trims the given text and wraps it in a cell.
func NewCell(text string) Cell {
	return Cell{value: strings.TrimSpace(text)}
}

// Value returns the cell text.
func (cl Cell) Value() string {
	return cl.value
}

// Width returns the display width of the cell text in terminal cells,
// the same metric the layout engine sizes columns with.
func (cl Cell) Width() int {
	return runewidth.StringWidth(cl.value)
}
