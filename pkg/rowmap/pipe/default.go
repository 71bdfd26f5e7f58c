package pipe

import (
	"github.com/rs/zerolog"

	"github.com/ib-77/rowmap/pkg/rowmap"
	"github.com/ib-77/rowmap/pkg/rowmap/convert"
	"github.com/ib-77/rowmap/pkg/rowmap/item"
)

// DefaultPipeline is the pipeline auto-configured from a discovered target
// member: locator = the member's own name, items = the change-type step for
// the member's type. WithColumnName/WithColumnIndex install an override
// pipeline seeded with the configuration applied so far; from then on the
// default is an inert pass-through to the override.
type DefaultPipeline[T any] struct {
	inner    *Pipeline[T]
	override *Pipeline[T]
}

// Default builds the auto-configured pipeline for a member. Panics when T has
// no registered or built-in converter; register one first via convert.Register.
func Default[T any](field string) *DefaultPipeline[T] {
	inner := New[T](field).Append(item.ChangeType(convert.MustFor[T]()))
	return &DefaultPipeline[T]{inner: inner}
}

func (d *DefaultPipeline[T]) active() *Pipeline[T] {
	if d.override != nil {
		return d.override
	}
	return d.inner
}

// Overridden reports whether execution is delegated to an override pipeline.
func (d *DefaultPipeline[T]) Overridden() bool {
	return d.override != nil
}

// WithColumnName replaces the member-name locator with a named-column
// pipeline, preserving the items and fallbacks configured so far.
func (d *DefaultPipeline[T]) WithColumnName(name string) *DefaultPipeline[T] {
	d.override = overrideFrom(d.active(), rowmap.ByName(name))
	return d
}

// WithColumnIndex replaces the member-name locator with an indexed-column
// pipeline, preserving the items and fallbacks configured so far.
func (d *DefaultPipeline[T]) WithColumnIndex(index int) *DefaultPipeline[T] {
	d.override = overrideFrom(d.active(), rowmap.ByIndex(index))
	return d
}

func (d *DefaultPipeline[T]) WithItems(items ...rowmap.Item[T]) *DefaultPipeline[T] {
	d.active().WithItems(items...)
	return d
}

func (d *DefaultPipeline[T]) Append(items ...rowmap.Item[T]) *DefaultPipeline[T] {
	d.active().Append(items...)
	return d
}

func (d *DefaultPipeline[T]) OnEmpty(f rowmap.Fallback[T]) *DefaultPipeline[T] {
	d.active().OnEmpty(f)
	return d
}

func (d *DefaultPipeline[T]) OnInvalid(f rowmap.Fallback[T]) *DefaultPipeline[T] {
	d.active().OnInvalid(f)
	return d
}

func (d *DefaultPipeline[T]) WithLogger(log zerolog.Logger) *DefaultPipeline[T] {
	d.active().WithLogger(log)
	return d
}

func (d *DefaultPipeline[T]) Execute(src rowmap.Source, row int) (T, error) {
	return d.active().Execute(src, row)
}

// overrideFrom builds a fresh pipeline of a more specific locator kind,
// carrying over the current items, fallbacks and logger so no configuration
// already applied is lost. The previous locator link is discarded.
func overrideFrom[T any](cur *Pipeline[T], loc rowmap.Locator) *Pipeline[T] {
	cur.mutable()
	return &Pipeline[T]{
		field:      cur.field,
		locator:    loc,
		items:      append([]rowmap.Item[T]{}, cur.items...),
		onEmpty:    cur.onEmpty,
		hasEmpty:   cur.hasEmpty,
		onInvalid:  cur.onInvalid,
		hasInvalid: cur.hasInvalid,
		log:        cur.log,
	}
}
