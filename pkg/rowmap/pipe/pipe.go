package pipe

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/ib-77/rowmap/pkg/rowmap"
)

// Pipeline binds one field's column locator to an ordered item chain and the
// fallback policy for Empty and Invalid terminal outcomes.
//
// Configuration methods mutate the pipeline and return it for chaining; they
// are setup-phase only. The first Execute seals the pipeline, after which a
// configuration call panics ErrSealed. A sealed pipeline is read-only and
// safe to Execute concurrently over distinct rows.
type Pipeline[T any] struct {
	field      string
	locator    rowmap.Locator
	items      []rowmap.Item[T]
	onEmpty    rowmap.Fallback[T]
	hasEmpty   bool
	onInvalid  rowmap.Fallback[T]
	hasInvalid bool
	log        zerolog.Logger
	sealed     atomic.Bool
}

// New creates a pipeline for a field, located by the field's own name until
// configured otherwise.
func New[T any](field string) *Pipeline[T] {
	return &Pipeline[T]{
		field:   field,
		locator: rowmap.ByName(field),
		log:     zerolog.Nop(),
	}
}

func (p *Pipeline[T]) Field() string {
	return p.field
}

func (p *Pipeline[T]) Locator() rowmap.Locator {
	return p.locator
}

func (p *Pipeline[T]) mutable() {
	if p.sealed.Load() {
		panic(fmt.Errorf("pipe: field %q: %w", p.field, rowmap.ErrSealed))
	}
}

// WithColumnName points the locator at a named column.
func (p *Pipeline[T]) WithColumnName(name string) *Pipeline[T] {
	p.mutable()
	if name == "" {
		panic(fmt.Errorf("pipe: column name: %w", rowmap.ErrNullConfiguration))
	}
	p.locator = rowmap.ByName(name)
	return p
}

// WithColumnIndex points the locator at a zero-based column index.
func (p *Pipeline[T]) WithColumnIndex(index int) *Pipeline[T] {
	p.mutable()
	if index < 0 {
		panic(fmt.Errorf("pipe: column index %d: %w", index, rowmap.ErrNullConfiguration))
	}
	p.locator = rowmap.ByIndex(index)
	return p
}

// WithItems replaces the item chain.
func (p *Pipeline[T]) WithItems(items ...rowmap.Item[T]) *Pipeline[T] {
	p.mutable()
	p.items = append([]rowmap.Item[T]{}, items...)
	return p
}

// Append adds items to the end of the chain.
func (p *Pipeline[T]) Append(items ...rowmap.Item[T]) *Pipeline[T] {
	p.mutable()
	p.items = append(p.items, items...)
	return p
}

// OnEmpty substitutes f() when the terminal outcome is Empty.
func (p *Pipeline[T]) OnEmpty(f rowmap.Fallback[T]) *Pipeline[T] {
	p.mutable()
	if f == nil {
		panic(fmt.Errorf("pipe: empty fallback: %w", rowmap.ErrNullConfiguration))
	}
	p.onEmpty = f
	p.hasEmpty = true
	return p
}

// OnInvalid substitutes f() when the terminal outcome is Invalid.
func (p *Pipeline[T]) OnInvalid(f rowmap.Fallback[T]) *Pipeline[T] {
	p.mutable()
	if f == nil {
		panic(fmt.Errorf("pipe: invalid fallback: %w", rowmap.ErrNullConfiguration))
	}
	p.onInvalid = f
	p.hasInvalid = true
	return p
}

// WithLogger attaches a logger for per-execution outcome diagnostics. The
// default is a disabled logger.
func (p *Pipeline[T]) WithLogger(log zerolog.Logger) *Pipeline[T] {
	p.mutable()
	p.log = log
	return p
}

// Execute locates the field's cell on a row and runs the item chain over it.
// A missing column is reported as a MappingError wrapping ColumnNotFoundError,
// never downgraded to Empty. An unresolved Empty terminal outcome wraps
// ErrValueEmpty so callers can choose field-default over row failure.
func (p *Pipeline[T]) Execute(src rowmap.Source, row int) (T, error) {
	p.sealed.Store(true)

	var zero T
	cell, err := p.locator.Resolve(src, row)
	if err != nil {
		return zero, &rowmap.MappingError{Field: p.field, Row: row, Reason: "column lookup failed", Cause: err}
	}
	return p.ExecuteCell(cell, row)
}

// ExecuteCell runs the item chain over an already-located cell. Readers that
// yield several cells per field use this once per cell.
func (p *Pipeline[T]) ExecuteCell(cell rowmap.RawCell, row int) (T, error) {
	p.sealed.Store(true)

	res := rowmap.Seed[T](cell)
	for _, it := range p.items {
		res = it.TryMap(res)
	}
	return p.resolve(res, row)
}

func (p *Pipeline[T]) resolve(res rowmap.Result[T], row int) (T, error) {
	var zero T
	switch {
	case res.IsCompleted():
		p.log.Trace().Str("field", p.field).Int("row", row).Msg("completed")
		return res.Value(), nil

	case res.IsInvalid():
		if p.hasInvalid {
			p.log.Debug().Str("field", p.field).Int("row", row).
				Err(res.Err()).Msg("invalid, fallback applied")
			return p.onInvalid(), nil
		}
		return zero, &rowmap.MappingError{Field: p.field, Row: row, Reason: "conversion failed", Cause: res.Err()}

	default: // Empty, or pending because no item classified the cell
		if p.hasEmpty {
			p.log.Debug().Str("field", p.field).Int("row", row).Msg("empty, fallback applied")
			return p.onEmpty(), nil
		}
		return zero, &rowmap.MappingError{Field: p.field, Row: row, Reason: "value missing", Cause: rowmap.ErrValueEmpty}
	}
}
