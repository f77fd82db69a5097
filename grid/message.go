package grid

import nt "github.com/nick-f925/csv-editor/entity"

type GridMsg interface {
	isGridMsg()
}

func (SizeMsg) isGridMsg()  {}
func (SortMsg) isGridMsg()  {}
func (ResetMsg) isGridMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

type SortMsg struct {
	ID nt.ColumnID
}

type ResetMsg struct{}
