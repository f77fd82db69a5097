package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nt "github.com/nick-f925/csv-editor/entity"
)

func testColumns() []nt.Column {
	return []nt.Column{
		{ID: nt.RowIDCol(), Label: "rowid", Width: 9, Align: nt.AlignRight},
		{ID: nt.DataCol(0), Label: "name", Width: 8},
		{ID: nt.DataCol(1), Label: "age", Width: 8},
	}
}

func TestRenderBeforeRow(t *testing.T) {
	pnl := New(testColumns(), "<NULL>")

	assert.Equal(t, "No row selected ...", pnl.Render())
}

func TestRowMsg(t *testing.T) {
	pnl := New(testColumns(), "<NULL>")

	row := nt.FromLine("alice,34")
	row.Assign(3)

	pnl, _ = pnl.Update(RowMsg{Row: row})
	out := pnl.Render()

	assert.Contains(t, out, "rowid")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "34")
}

func TestRowMsgMissingCells(t *testing.T) {
	pnl := New(testColumns(), "<NULL>")

	row := nt.FromLine("alice")
	row.Assign(0)

	pnl, _ = pnl.Update(RowMsg{Row: row})

	assert.Contains(t, pnl.Render(), "<NULL>")
}

func TestRenderWindow(t *testing.T) {
	pnl := New(testColumns(), "<NULL>")

	row := nt.FromLine("alice,34")
	row.Assign(0)

	pnl, _ = pnl.Update(RowMsg{Row: row})
	pnl, _ = pnl.Update(SizeMsg{Width: 80, Height: 2})
	pnl.offset = 1

	out := pnl.Render()
	assert.NotContains(t, out, "rowid")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "34")
}

func TestRowMsgResetsOffset(t *testing.T) {
	pnl := New(testColumns(), "<NULL>")
	pnl.offset = 2

	row := nt.FromLine("a,1")
	row.Assign(0)

	pnl, _ = pnl.Update(RowMsg{Row: row})
	assert.Equal(t, 0, pnl.offset)
}
