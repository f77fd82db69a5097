package detail

import nt "github.com/nick-f925/csv-editor/entity"

type DetailMsg interface {
	isDetailMsg()
}

func (SizeMsg) isDetailMsg() {}
func (RowMsg) isDetailMsg()  {}

type SizeMsg struct {
	Width  int
	Height int
}

type RowMsg struct {
	Row nt.Row
}
