// Package grid shows rows as a scrollable, sortable table. It only
// reaches the rows through their column field and compare methods, so
// sorting and rendering work the same for short rows and for columns
// a row never had.
package grid

import (
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	nt "github.com/nick-f925/csv-editor/entity"
	"github.com/nick-f925/csv-editor/style"
)

const (
	headerHeight = 2
	ellipsis     = "…"
)

// Panel handles the table view display, navigation, and sort state.
type Panel struct {
	selected  int // absolute position (0 to len(items)-1) of the selected row
	offset    int // first row shown
	cursorCol int // column under the sort cursor
	sortCol   int // column of the active sort
	sortDesc  bool

	width  int
	height int

	columns []nt.Column
	items   []nt.Row
	missing string

	table *table.Table
}

// New builds a panel over its own copy of the items, so sorting never
// reorders the caller's rows. Items start in insertion order, which is
// the rowid sort ascending.
func New(columns []nt.Column, items []nt.Row, missing string) Panel {

	lgt := table.New()
	style.StyleTable(lgt)

	return Panel{
		columns: columns,
		items:   append([]nt.Row{}, items...),
		missing: missing,
		table:   lgt,
	}
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl = pnl.follow()
		return pnl, pnl.selectedCmd()

	case SortMsg:
		_, idx, found := lo.FindIndexOf(pnl.columns, func(col nt.Column) bool {
			return col.ID == msg.ID
		})
		if !found {
			return pnl, nil
		}
		return pnl.sortBy(idx)

	case ResetMsg:
		pnl.selected = 0
		pnl.offset = 0
		return pnl, pnl.selectedCmd()

	case tea.KeyPressMsg:
		pageSize := pnl.pageSize()

		switch msg.String() {
		case "up", "k":
			if pnl.selected > 0 {
				pnl.selected--
			}

		case "down", "j":
			if pnl.selected < len(pnl.items)-1 {
				pnl.selected++
			}

		case "pgup", "ctrl+u":
			pnl.selected -= pageSize

		case "pgdown", "ctrl+d":
			pnl.selected += pageSize

		case "g":
			pnl.selected = 0

		case "G":
			pnl.selected = len(pnl.items) - 1

		case "left", "h":
			if pnl.cursorCol > 0 {
				pnl.cursorCol--
			}

		case "right", "l":
			if pnl.cursorCol < len(pnl.columns)-1 {
				pnl.cursorCol++
			}

		case "s":
			return pnl.sortBy(pnl.cursorCol)

		case "enter":
			return pnl, pnl.inspectCmd()
		}

		pnl = pnl.follow()
		return pnl, pnl.selectedCmd()
	}

	return pnl, nil
}

// Render renders the header and the current page of rows.
func (pnl Panel) Render() string {

	pnl.table.Headers(pnl.headers()...)
	pnl.table.StyleFunc(pnl.styler())

	pnl.table.ClearRows()
	for _, row := range pnl.page() {
		pnl.table.Row(pnl.cells(row)...)
	}

	return pnl.table.String()
}

// unexported

// follow clamps the selection to the data and scrolls the page so the
// selection stays visible.
func (pnl Panel) follow() Panel {

	if pnl.selected > len(pnl.items)-1 {
		pnl.selected = len(pnl.items) - 1
	}
	if pnl.selected < 0 {
		pnl.selected = 0
	}

	pageSize := pnl.pageSize()
	if pnl.selected < pnl.offset {
		pnl.offset = pnl.selected
	} else if pageSize > 0 && pnl.selected >= pnl.offset+pageSize {
		pnl.offset = pnl.selected - pageSize + 1
	}

	return pnl
}

// sortBy sorts the panel's items by the given column, ascending on
// first sort and flipping direction when the column repeats. Stable,
// so ties keep their previous relative order.
func (pnl Panel) sortBy(idx int) (Panel, tea.Cmd) {

	if idx < 0 || idx >= len(pnl.columns) {
		return pnl, nil
	}

	if idx == pnl.sortCol {
		pnl.sortDesc = !pnl.sortDesc
	} else {
		pnl.sortCol = idx
		pnl.sortDesc = false
	}

	col := pnl.columns[idx]
	items := pnl.items
	sort.SliceStable(items, func(i, j int) bool {
		order := nt.Compare(items[i], items[j], col.ID, pnl.missing)
		if pnl.sortDesc {
			return order > 0
		}
		return order < 0
	})

	return pnl, pnl.sortedCmd()
}

func (pnl Panel) pageSize() int {
	return pnl.height - headerHeight
}

func (pnl Panel) selectedLine() int {
	return pnl.selected - pnl.offset
}

func (pnl Panel) page() []nt.Row {

	start := min(pnl.offset, len(pnl.items))
	end := start + pnl.pageSize()
	if pnl.pageSize() < 0 {
		end = start
	}
	if end > len(pnl.items) {
		end = len(pnl.items)
	}

	return pnl.items[start:end]
}

// headers pads each label to its column width, marking the sorted
// column with a direction arrow.
func (pnl Panel) headers() []string {

	return lo.Map(pnl.columns, func(col nt.Column, i int) string {
		label := col.Label
		if i == pnl.sortCol {
			label = label + " " + arrow(pnl.sortDesc)
		}
		return fmt.Sprintf("%-*s", col.Width+1, label)
	})
}

func (pnl Panel) cells(row nt.Row) []string {

	return lo.Map(pnl.columns, func(col nt.Column, _ int) string {
		return truncate(row.Field(col.ID, pnl.missing), col.Width)
	})
}

// styler highlights the selected row and the header cell under the
// sort cursor, and applies column alignment.
func (pnl Panel) styler() func(row, col int) lipgloss.Style {

	selected := pnl.selectedLine()
	return func(row, col int) lipgloss.Style {
		sty := style.UnStyle
		switch {
		case row == table.HeaderRow && col == pnl.cursorCol:
			sty = style.HlHeaderStyle
		case row == selected:
			sty = style.HlRowStyle
		}

		if col < len(pnl.columns) {
			switch pnl.columns[col].Align {
			case nt.AlignRight:
				sty = sty.Align(lipgloss.Right)
			case nt.AlignCenter:
				sty = sty.Align(lipgloss.Center)
			}
		}

		return sty
	}
}

// help

func arrow(desc bool) string {
	if desc {
		return "▼"
	}
	return "▲"
}

func truncate(in string, width int) string {

	if runewidth.StringWidth(in) <= width {
		return in
	}

	return runewidth.Truncate(in, width, ellipsis)
}
