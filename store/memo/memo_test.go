package memo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromReader(t *testing.T) {
	input := "name,age\nalice,34\nbob,9\n"

	tbl, err := FromReader("people", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, "people", tbl.Name())
	assert.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []string{"name", "age"}, tbl.HeaderNames())

	rows := tbl.Rows()
	assert.Equal(t, []string{"alice", "34"}, rows[0].Strings())
	assert.Equal(t, int64(0), rows[0].RowID())
	assert.Equal(t, int64(1), rows[1].RowID())
}

func TestFromReaderShortRow(t *testing.T) {
	input := "a,b\n1,2\n3\n"

	tbl, err := FromReader("short", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, []string{"a", "b"}, tbl.HeaderNames())

	rows := tbl.Rows()
	assert.Equal(t, []string{"1", "2"}, rows[0].Strings())
	assert.Equal(t, []string{"3"}, rows[1].Strings())
	assert.Equal(t, "<NULL>", rows[1].TryGet(1, "<NULL>"))
}

func TestFromReaderRaggedRows(t *testing.T) {
	input := "a,b\n1,2,3\n4\n"

	tbl, err := FromReader("ragged", strings.NewReader(input))
	assert.NoError(t, err)

	// widest row sets the column count, header gets padded
	assert.Equal(t, 3, tbl.NumCols())
	assert.Equal(t, []string{"a", "b", "col:2"}, tbl.HeaderNames())

	short := tbl.Rows()[1]
	assert.Equal(t, 1, short.NumCols())
	assert.Equal(t, "<NULL>", short.TryGet(1, "<NULL>"))
}

func TestFromReaderHeaderNames(t *testing.T) {
	input := ",age,\nalice,34,x\n"

	tbl, err := FromReader("anon", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, []string{"col:0", "age", "col:2"}, tbl.HeaderNames())
}

func TestFromReaderEmptyHeader(t *testing.T) {
	input := "\n1,2,3\n"

	tbl, err := FromReader("headless", strings.NewReader(input))
	assert.NoError(t, err)

	// every label is synthesized when the header line is empty
	assert.Equal(t, 3, tbl.NumCols())
	assert.Equal(t, []string{"col:0", "col:1", "col:2"}, tbl.HeaderNames())
	assert.Equal(t, 1, tbl.NumRows())
}

func TestFromReaderEmptyInput(t *testing.T) {
	tbl, err := FromReader("empty", strings.NewReader(""))
	assert.NoError(t, err)

	assert.Equal(t, 1, tbl.NumCols())
	assert.Equal(t, []string{"col:0"}, tbl.HeaderNames())
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, 0, tbl.RowIDWidth())
}

func TestFromReaderSkipsBlankLines(t *testing.T) {
	input := "a,b\n1,2\n\n\n3,4\n"

	tbl, err := FromReader("gappy", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []string{"3", "4"}, tbl.Rows()[1].Strings())
}

func TestFromReaderBlankLinesOnly(t *testing.T) {
	input := "a,b\n\n\n"

	tbl, err := FromReader("blanks", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
}

func TestFromReaderCarriageReturns(t *testing.T) {
	input := "a,b\r\n1,2\r\n"

	tbl, err := FromReader("dos", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, tbl.Rows()[0].Strings())
}

func TestFromReaderLongLine(t *testing.T) {
	long := strings.Repeat("a", 70*1024)
	input := "h1,h2\n" + long + ",x\n"

	tbl, err := FromReader("long", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, 1, tbl.NumRows())
	assert.Equal(t, len(long), tbl.ColWidth(0))
	assert.Equal(t, "x", tbl.Rows()[0].TryGet(1, ""))
}

func TestFromFilepath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	err := os.WriteFile(path, []byte("name,age\nalice,34\n"), 0644)
	assert.NoError(t, err)

	tbl, err := FromFilepath(path)
	assert.NoError(t, err)

	assert.Equal(t, path, tbl.Name())
	assert.Equal(t, 1, tbl.NumRows())
}

func TestFromFilepathMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	tbl, err := FromFilepath(path)
	assert.Error(t, err)
	assert.Nil(t, tbl)
	assert.Contains(t, err.Error(), "could not open")
	assert.Contains(t, err.Error(), path)
}

func TestColWidths(t *testing.T) {
	input := "name,age\nalice,34\nbo,117\n"

	tbl, err := FromReader("widths", strings.NewReader(input))
	assert.NoError(t, err)

	assert.Equal(t, 5, tbl.ColWidth(0))
	assert.Equal(t, 3, tbl.ColWidth(1))
	assert.Equal(t, 0, tbl.ColWidth(9))

	assert.Equal(t, 4, tbl.HeaderWidth(0))
	assert.Equal(t, 3, tbl.HeaderWidth(1))
	assert.Equal(t, 0, tbl.HeaderWidth(9))
}

func TestRowIDWidth(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("n\n")
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}

	tbl, err := FromReader("dozen", strings.NewReader(sb.String()))
	assert.NoError(t, err)

	// last rowid is 11, two digits
	assert.Equal(t, 12, tbl.NumRows())
	assert.Equal(t, 2, tbl.RowIDWidth())
}
