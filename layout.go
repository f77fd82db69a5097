package csview

import (
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	nt "github.com/nick-f925/csv-editor/entity"
	"github.com/nick-f925/csv-editor/util"
)

// LayoutFile is looked for in the working directory; absence is fine.
const LayoutFile = "layout.yaml"

// Layout carries the view's formatting policy: how much a column is
// padded, how narrow it may get, and what a missing cell reads as.
// All widths combine with cell widths in terminal display cells.
type Layout struct {
	MinCellWidth  int    `yaml:"min_cell_width"`
	CellPadding   int    `yaml:"cell_padding"`
	HeaderPadding int    `yaml:"header_padding"`
	Placeholder   string `yaml:"placeholder"`
	RowIDLabel    string `yaml:"rowid_label"`
	LogFile       string `yaml:"logfile,omitempty"`
}

// DefaultLayout returns the stock formatting policy. A zero
// MinCellWidth means wide enough for the placeholder.
func DefaultLayout() Layout {
	return Layout{
		CellPadding:   2,
		HeaderPadding: 4,
		Placeholder:   "<NULL>",
		RowIDLabel:    "rowid",
	}
}

// LoadLayout returns the layout from the given yaml file, fields
// absent from the file keeping their defaults. A missing file is not
// an error, a malformed one is.
func LoadLayout(path string) (layout Layout, err error) {

	layout = DefaultLayout()

	if _, statErr := os.Stat(path); statErr != nil {
		return
	}

	err = util.LoadConfig(&layout, path)
	return
}

// DisplayWidth returns the character width column c occupies: wide
// enough for its widest cell (or the placeholder) plus cell padding,
// and for its header label plus header padding.
func (layout Layout) DisplayWidth(st Store, c int) int {

	width := max(st.ColWidth(c), layout.minCellWidth()) + layout.CellPadding
	headerWidth := st.HeaderWidth(c) + layout.HeaderPadding

	return max(width, headerWidth)
}

// TotalWidth returns the width of the whole grid, rowid column
// included, used to size the viewport so no column is clipped.
func (layout Layout) TotalWidth(st Store) int {

	total := layout.rowIDWidth(st)
	for c := 0; c < st.NumCols(); c++ {
		total += layout.DisplayWidth(st, c)
	}
	return total
}

// Columns materializes the column list for the grid: the rowid
// pseudo-column first, then one column per data position.
func (layout Layout) Columns(st Store) []nt.Column {

	columns := []nt.Column{{
		ID:    nt.RowIDCol(),
		Label: layout.RowIDLabel,
		Width: layout.rowIDWidth(st),
		Align: nt.AlignRight,
	}}

	return append(columns, lo.Map(st.HeaderNames(), func(name string, c int) nt.Column {
		return nt.Column{
			ID:    nt.DataCol(c),
			Label: name,
			Width: layout.DisplayWidth(st, c),
		}
	})...)
}

// unexported

func (layout Layout) minCellWidth() int {

	if layout.MinCellWidth > 0 {
		return layout.MinCellWidth
	}
	return runewidth.StringWidth(layout.Placeholder)
}

func (layout Layout) rowIDWidth(st Store) int {
	return max(st.RowIDWidth(), runewidth.StringWidth(layout.RowIDLabel)+layout.HeaderPadding)
}
