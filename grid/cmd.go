package grid

import (
	"github.com/pkg/errors"

	tea "charm.land/bubbletea/v2"

	nt "github.com/nick-f925/csv-editor/entity"
	"github.com/nick-f925/csv-editor/message"
)

func (pnl Panel) selectedCmd() tea.Cmd {

	_, err := pnl.selectedRow()
	if err != nil {
		// nothing selectable, not worth reporting
		return nil
	}

	row := pnl.selected + 1 // rows are 1-indexed for display

	return func() tea.Msg {
		return message.SelectedMsg{
			Row: row,
		}
	}
}

func (pnl Panel) sortedCmd() tea.Cmd {

	col := pnl.columns[pnl.sortCol]

	return func() tea.Msg {
		return message.SortedMsg{
			Label: col.Label,
			Desc:  pnl.sortDesc,
		}
	}
}

func (pnl Panel) inspectCmd() tea.Cmd {

	row, err := pnl.selectedRow()
	if err != nil {
		return message.ErrorCmd(err)
	}

	return func() tea.Msg {
		return message.InspectMsg{
			Row: row,
		}
	}
}

func (pnl Panel) selectedRow() (row nt.Row, err error) {

	if pnl.selected >= len(pnl.items) {
		err = errors.Errorf("index %d is out of bounds of %d rows", pnl.selected, len(pnl.items))
		return
	}

	row = pnl.items[pnl.selected]
	return
}
