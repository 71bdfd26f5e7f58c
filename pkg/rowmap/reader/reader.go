package reader

import (
	"fmt"

	"github.com/ib-77/rowmap/pkg/rowmap"
)

// Reader produces the ordered raw cells a field's pipeline(s) consume for a
// row. It fails with ColumnNotFoundError when a referenced column is absent.
type Reader interface {
	ReadValues(src rowmap.Source, row int) ([]rowmap.RawCell, error)
}

type mode uint8

const (
	modeUnset mode = iota
	modeSingle
	modeMulti
	modeSplit
)

// SplitOptions mirror standard string-split semantics for the split-cell
// variant: Trim strips whitespace around each segment, KeepEmpty retains
// empty segments instead of dropping them.
type SplitOptions struct {
	Trim      bool
	KeepEmpty bool
}

// CellsReader is a tagged-variant reader: single column, multiple explicit
// columns, or one cell split into segments. The single-cell locator is
// remembered across mode switches so a reader can move multi -> split and
// back without losing the cell it wraps; the multi and split strategies
// themselves are mutually exclusive and switching between them discards the
// other's configuration.
type CellsReader struct {
	mode   mode
	single rowmap.Locator
	multi  []rowmap.Locator
	seps   []string
	opts   SplitOptions
}

func New() *CellsReader {
	return &CellsReader{}
}

// WithColumnName configures a single named column. This locator also becomes
// the wrapped cell for any later split configuration.
func (r *CellsReader) WithColumnName(name string) *CellsReader {
	if name == "" {
		panic(fmt.Errorf("reader: column name: %w", rowmap.ErrNullConfiguration))
	}
	r.single = rowmap.ByName(name)
	if r.mode != modeSplit {
		r.mode = modeSingle
		r.multi = nil
	}
	return r
}

// WithColumnIndex configures a single indexed column, see WithColumnName.
func (r *CellsReader) WithColumnIndex(index int) *CellsReader {
	if index < 0 {
		panic(fmt.Errorf("reader: column index %d: %w", index, rowmap.ErrNullConfiguration))
	}
	r.single = rowmap.ByIndex(index)
	if r.mode != modeSplit {
		r.mode = modeSingle
		r.multi = nil
	}
	return r
}

// WithColumnNames configures multiple explicit named columns, yielded in the
// listed order. Replaces any split configuration.
func (r *CellsReader) WithColumnNames(names ...string) *CellsReader {
	if len(names) == 0 {
		panic(fmt.Errorf("reader: column names: %w", rowmap.ErrNullConfiguration))
	}
	r.multi = make([]rowmap.Locator, 0, len(names))
	for _, n := range names {
		r.multi = append(r.multi, rowmap.ByName(n))
	}
	r.mode = modeMulti
	r.seps = nil
	return r
}

// WithColumnIndices configures multiple explicit indexed columns, yielded in
// the listed order. Replaces any split configuration.
func (r *CellsReader) WithColumnIndices(indices ...int) *CellsReader {
	if len(indices) == 0 {
		panic(fmt.Errorf("reader: column indices: %w", rowmap.ErrNullConfiguration))
	}
	r.multi = make([]rowmap.Locator, 0, len(indices))
	for _, i := range indices {
		r.multi = append(r.multi, rowmap.ByIndex(i))
	}
	r.mode = modeMulti
	r.seps = nil
	return r
}

// WithSeparators switches the reader to split mode over the remembered
// single-cell locator, discarding any multi-column configuration. Panics
// ErrSplitReaderMisuse when no single cell was ever configured to wrap.
func (r *CellsReader) WithSeparators(seps ...string) *CellsReader {
	if len(seps) == 0 {
		panic(fmt.Errorf("reader: separators: %w", rowmap.ErrNullConfiguration))
	}
	if !r.single.IsSet() {
		panic(fmt.Errorf("reader: %w", rowmap.ErrSplitReaderMisuse))
	}
	r.seps = append([]string{}, seps...)
	r.mode = modeSplit
	r.multi = nil
	return r
}

// WithSeparatorRunes is WithSeparators for character separators.
func (r *CellsReader) WithSeparatorRunes(seps ...rune) *CellsReader {
	if len(seps) == 0 {
		panic(fmt.Errorf("reader: separators: %w", rowmap.ErrNullConfiguration))
	}
	strs := make([]string, 0, len(seps))
	for _, c := range seps {
		strs = append(strs, string(c))
	}
	return r.WithSeparators(strs...)
}

// WithSplitOptions adjusts segment handling. Split-specific: calling it on a
// reader not currently in split mode panics ErrSplitReaderMisuse.
func (r *CellsReader) WithSplitOptions(opts SplitOptions) *CellsReader {
	if r.mode != modeSplit {
		panic(fmt.Errorf("reader: split options on non-split reader: %w", rowmap.ErrSplitReaderMisuse))
	}
	r.opts = opts
	return r
}

// ReadValues resolves the configured columns for a row into raw cells.
func (r *CellsReader) ReadValues(src rowmap.Source, row int) ([]rowmap.RawCell, error) {
	switch r.mode {
	case modeSingle:
		cell, err := r.single.Resolve(src, row)
		if err != nil {
			return nil, err
		}
		return []rowmap.RawCell{cell}, nil

	case modeMulti:
		cells := make([]rowmap.RawCell, 0, len(r.multi))
		for _, loc := range r.multi {
			cell, err := loc.Resolve(src, row)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
		return cells, nil

	case modeSplit:
		cell, err := r.single.Resolve(src, row)
		if err != nil {
			return nil, err
		}
		return splitCell(cell, r.seps, r.opts), nil

	default:
		return nil, fmt.Errorf("reader: no columns configured: %w", rowmap.ErrNullConfiguration)
	}
}
