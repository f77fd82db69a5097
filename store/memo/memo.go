// Package memo holds a parsed csv dataset in memory: one header row,
// data rows in insertion order, and the widest column count seen.
package memo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	nt "github.com/nick-f925/csv-editor/entity"
)

// Table is the full parsed dataset. It is built once by a loader and
// read-only afterwards; all width queries are recomputed on demand.
type Table struct {
	header  nt.Row
	rows    []nt.Row
	numCols int
	name    string
}

// FromFilepath reads a csv file into a table. The only recoverable
// failure is the open itself; the returned error carries the path and
// the underlying cause.
func FromFilepath(path string) (tbl *Table, err error) {

	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "could not open '%s'", path)
		return
	}
	defer file.Close()

	return FromReader(path, file)
}

// FromReader reads csv lines into a table; name labels the source in
// the footer and in errors. The first line is the header, blank lines
// are skipped, and every other line becomes a row. A read failure
// mid-stream aborts the load.
func FromReader(name string, reader io.Reader) (tbl *Table, err error) {

	// a Scanner would cap lines at 64K
	rdr := bufio.NewReader(reader)

	headerLine, readErr := rdr.ReadString('\n')
	if readErr != nil && readErr != io.EOF {
		err = errors.Wrapf(readErr, "failed to read from '%s'", name)
		return
	}

	// an empty source still yields a header with one synthesized column
	header := nt.FromLine(trimEOL(headerLine))

	tbl = &Table{
		header:  header,
		numCols: header.NumCols(),
		name:    name,
	}

	var line string
	for readErr != io.EOF {
		line, readErr = rdr.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			err = errors.Wrapf(readErr, "failed to read from '%s'", name)
			tbl = nil
			return
		}

		line = trimEOL(line)
		if len(line) == 0 {
			continue
		}
		tbl.addRow(nt.FromLine(line))
	}

	tbl.fixHeaderNames()
	return
}

// Name returns the name of the data source.
func (tbl *Table) Name() string {
	return tbl.name
}

// NumCols returns the widest column count seen across the header and
// all rows.
func (tbl *Table) NumCols() int {
	return tbl.numCols
}

// NumRows returns the number of data rows.
func (tbl *Table) NumRows() int {
	return len(tbl.rows)
}

// Rows returns the data rows in insertion order. Callers wanting a
// different order must sort their own copy.
func (tbl *Table) Rows() []nt.Row {
	return tbl.rows
}

// HeaderNames returns one display label per column.
func (tbl *Table) HeaderNames() []string {
	return tbl.header.Strings()
}

// ColWidth returns the widest cell in column c over all data rows, a
// short row contributing nothing.
func (tbl *Table) ColWidth(c int) (width int) {

	for _, row := range tbl.rows {
		width = max(width, row.CellWidth(c))
	}
	return
}

// HeaderWidth returns the display width of header cell c.
func (tbl *Table) HeaderWidth(c int) int {
	return tbl.header.CellWidth(c)
}

// RowIDWidth returns the display width of the widest rowid, zero when
// the table has no rows.
func (tbl *Table) RowIDWidth() int {

	if len(tbl.rows) == 0 {
		return 0
	}
	return len(tbl.rows[len(tbl.rows)-1].RowIDString())
}

// unexported

// addRow appends a row, assigning the next sequential rowid and
// widening numCols as needed.
func (tbl *Table) addRow(row nt.Row) {

	tbl.numCols = max(tbl.numCols, row.NumCols())
	row.Assign(int64(len(tbl.rows)))
	tbl.rows = append(tbl.rows, row)
}

// fixHeaderNames synthesizes a col:<position> label for every empty
// header cell and pads the header out to numCols. It runs exactly
// once, after the last row, because numCols is only final then.
func (tbl *Table) fixHeaderNames() {

	for c, name := range tbl.header.Strings() {
		if len(name) == 0 {
			tbl.header.SetCell(c, colName(c))
		}
	}

	for c := tbl.header.NumCols(); c < tbl.numCols; c++ {
		tbl.header.AddCell(nt.NewCell(colName(c)))
	}
}

func colName(c int) string {
	return fmt.Sprintf("col:%d", c)
}

// trimEOL removes one line ending, dos or unix.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
