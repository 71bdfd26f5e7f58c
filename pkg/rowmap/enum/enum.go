package enum

import (
	"fmt"

	"github.com/ib-77/rowmap/pkg/rowmap"
	"github.com/ib-77/rowmap/pkg/rowmap/convert"
	"github.com/ib-77/rowmap/pkg/rowmap/item"
	"github.com/ib-77/rowmap/pkg/rowmap/pipe"
	"github.com/ib-77/rowmap/pkg/rowmap/reader"
)

// InvalidPolicy decides what an unresolved Invalid element does to the whole
// field.
type InvalidPolicy uint8

const (
	// AbortOnInvalid fails the field on the first unresolved Invalid element.
	AbortOnInvalid InvalidPolicy = iota
	// DropInvalid skips unresolved Invalid elements and keeps the siblings.
	DropInvalid
)

// Map populates a collection-typed field: one reader yields N raw cells, the
// element pipeline runs once per cell, the Completed values fold into the
// final collection in reader order.
type Map[E any] struct {
	field  string
	reader *reader.CellsReader
	elem   *pipe.Pipeline[E]
	policy InvalidPolicy
}

// New builds the map for a field, reading a single cell under the field's own
// name and converting each element with the default change-type pipeline.
// Panics when E has no converter; supply one via convert.Register or replace
// the element pipeline via WithElementPipeline.
func New[E any](field string) *Map[E] {
	return &Map[E]{
		field:  field,
		reader: reader.New().WithColumnName(field),
		elem:   pipe.New[E](field).Append(item.ChangeType(convert.MustFor[E]())),
	}
}

// WithReader replaces the cell values reader.
func (m *Map[E]) WithReader(r *reader.CellsReader) *Map[E] {
	if r == nil {
		panic(fmt.Errorf("enum: reader: %w", rowmap.ErrNullConfiguration))
	}
	m.reader = r
	return m
}

// Reader exposes the current reader for in-place reconfiguration, e.g.
// Reader().WithSeparators(";").
func (m *Map[E]) Reader() *reader.CellsReader {
	return m.reader
}

// WithElementPipeline replaces the per-element pipeline.
func (m *Map[E]) WithElementPipeline(p *pipe.Pipeline[E]) *Map[E] {
	if p == nil {
		panic(fmt.Errorf("enum: element pipeline: %w", rowmap.ErrNullConfiguration))
	}
	m.elem = p
	return m
}

// ElementPipeline exposes the per-element pipeline for configuration.
func (m *Map[E]) ElementPipeline() *pipe.Pipeline[E] {
	return m.elem
}

// OnInvalidElement sets the policy for unresolved Invalid elements.
func (m *Map[E]) OnInvalidElement(policy InvalidPolicy) *Map[E] {
	m.policy = policy
	return m
}

// Values reads the row's cells and runs each through the element pipeline
// independently: one element's outcome never short-circuits its siblings
// unless the policy aborts. Unresolved-Empty elements are dropped; only
// Completed (or fallback-resolved) values are collected, in reader order.
func (m *Map[E]) Values(src rowmap.Source, row int) ([]E, error) {
	cells, err := m.reader.ReadValues(src, row)
	if err != nil {
		return nil, &rowmap.MappingError{Field: m.field, Row: row, Reason: "reading cells failed", Cause: err}
	}

	out := make([]E, 0, len(cells))
	for _, cell := range cells {
		v, err := m.elem.ExecuteCell(cell, row)
		if err != nil {
			if rowmap.IsEmptyValue(err) {
				continue
			}
			if m.policy == DropInvalid {
				continue
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Assign is the slice-field assignment hook exposed to the external mapper.
func (m *Map[E]) Assign(src rowmap.Source, row int, dst *[]E) error {
	if dst == nil {
		panic(fmt.Errorf("enum: assign target: %w", rowmap.ErrNullConfiguration))
	}
	vals, err := m.Values(src, row)
	if err != nil {
		return err
	}
	*dst = vals
	return nil
}
