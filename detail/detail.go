// Package detail shows a single row as label and value lines, one
// per column, for rows too wide to take in from the table.
package detail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	nt "github.com/nick-f925/csv-editor/entity"
	"github.com/nick-f925/csv-editor/style"
)

// Panel handles the row inspection display state.
type Panel struct {
	columns []nt.Column
	missing string

	row          nt.Row
	loaded       bool
	contentLines []string

	width  int
	height int
	offset int // line offset for scrolling content
}

func New(columns []nt.Column, missing string) Panel {
	return Panel{
		columns: columns,
		missing: missing,
	}
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case RowMsg:
		pnl.row = msg.Row
		pnl.loaded = true
		pnl.computeContentLines()
		pnl.offset = 0

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.offset = 0

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pnl.offset > 0 {
				pnl.offset--
			}

		case "down", "j":
			pnl.offset++

		case "pgup", "ctrl+u":
			pnl.offset -= pnl.height

		case "pgdown", "ctrl+d":
			pnl.offset += pnl.height
		}

		maxOffset := len(pnl.contentLines) - pnl.height
		if pnl.offset > maxOffset {
			pnl.offset = maxOffset
		}
		if pnl.offset < 0 {
			pnl.offset = 0
		}
	}

	return pnl, nil
}

// Render renders the visible portion of the label and value lines.
func (pnl Panel) Render() string {

	if !pnl.loaded {
		return "No row selected ..."
	}

	visible := pnl.contentLines[pnl.offset:]
	if pnl.height > 0 && len(visible) > pnl.height {
		visible = visible[:pnl.height]
	}

	return strings.Join(visible, "\n")
}

// unexported

// computeContentLines formats one line per column, labels right
// aligned to the widest.
func (pnl *Panel) computeContentLines() {

	labelWidth := 0
	for _, col := range pnl.columns {
		labelWidth = max(labelWidth, runewidth.StringWidth(col.Label))
	}

	pnl.contentLines = lo.Map(pnl.columns, func(col nt.Column, _ int) string {
		label := style.MutedStyle.Render(fmt.Sprintf("%*s", labelWidth, col.Label))
		return label + "  " + pnl.row.Field(col.ID, pnl.missing)
	})
}
