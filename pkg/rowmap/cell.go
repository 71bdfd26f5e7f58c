package rowmap

import "fmt"

// RawCell is one located (row, column) text value from the tabular source.
// It is immutable once produced by a reader.
type RawCell struct {
	Row    int
	Column int
	Name   string
	Text   string
}

// Source is the row-value collaborator the engine reads from. Implementations
// wrap whatever actually opened the sheet (xlsx reader, csv file, test data).
type Source interface {
	// ColumnIndex resolves a header name to a column index.
	ColumnIndex(name string) (int, bool)
	// ColumnName returns the header name of a column index.
	ColumnName(index int) (string, bool)
	// ColumnCount returns the number of columns in the header.
	ColumnCount() int
	// RowCount returns the number of data rows.
	RowCount() int
	// CellText returns the raw text of a cell, false if the row has no such cell.
	CellText(row, column int) (string, bool)
}

// Locator describes where a field's cell lives: a column name or a column
// index. The zero Locator is unset.
type Locator struct {
	name    string
	index   int
	byIndex bool
	set     bool
}

func ByName(name string) Locator {
	return Locator{name: name, set: true}
}

func ByIndex(index int) Locator {
	return Locator{index: index, byIndex: true, set: true}
}

func (l Locator) IsSet() bool {
	return l.set
}

func (l Locator) String() string {
	if !l.set {
		return "<unset>"
	}
	if l.byIndex {
		return fmt.Sprintf("#%d", l.index)
	}
	return fmt.Sprintf("%q", l.name)
}

// Resolve locates the cell for a row. Absence of the column is a
// configuration-level failure, distinct from an empty cell value.
func (l Locator) Resolve(src Source, row int) (RawCell, error) {
	if !l.set {
		return RawCell{}, ErrNullConfiguration
	}

	col := l.index
	name := l.name
	if l.byIndex {
		if col < 0 || col >= src.ColumnCount() {
			return RawCell{}, &ColumnNotFoundError{Index: col, ByIndex: true, Row: row}
		}
		if n, ok := src.ColumnName(col); ok {
			name = n
		}
	} else {
		c, ok := src.ColumnIndex(name)
		if !ok {
			return RawCell{}, &ColumnNotFoundError{Column: name, Row: row}
		}
		col = c
	}

	text, _ := src.CellText(row, col) // a missing cell reads as empty text
	return RawCell{Row: row, Column: col, Name: name, Text: text}, nil
}

// SliceSource is an in-memory Source over a header and data rows. It is the
// shape most spreadsheet readers hand over anyway and is what the tests use.
type SliceSource struct {
	header  []string
	columns map[string]int
	rows    [][]string
}

func NewSliceSource(header []string, rows [][]string) *SliceSource {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := columns[h]; !dup {
			columns[h] = i
		}
	}
	return &SliceSource{header: header, columns: columns, rows: rows}
}

func (s *SliceSource) ColumnIndex(name string) (int, bool) {
	i, ok := s.columns[name]
	return i, ok
}

func (s *SliceSource) ColumnName(index int) (string, bool) {
	if index < 0 || index >= len(s.header) {
		return "", false
	}
	return s.header[index], true
}

func (s *SliceSource) ColumnCount() int {
	return len(s.header)
}

func (s *SliceSource) RowCount() int {
	return len(s.rows)
}

func (s *SliceSource) CellText(row, column int) (string, bool) {
	if row < 0 || row >= len(s.rows) {
		return "", false
	}
	r := s.rows[row]
	if column < 0 || column >= len(r) {
		return "", false
	}
	return r[column], true
}
