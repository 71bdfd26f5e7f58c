package rowmap

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of running one raw cell through zero or more pipeline
// items. Exactly one tag is active; a freshly seeded Result has none and is
// pending until the first item classifies it.
type Result[T any] struct {
	id          uuid.UUID
	createdAt   time.Time
	value       T
	err         error
	cell        RawCell
	isCompleted bool
	isInvalid   bool
	isEmpty     bool
}

// Seed wraps a located cell into a pending Result.
func Seed[T any](cell RawCell) Result[T] {
	return Result[T]{
		cell:      cell,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// EmptyOf marks the cell as carrying no value.
func EmptyOf[T any](cell RawCell) Result[T] {
	return Result[T]{
		cell:      cell,
		isEmpty:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// InvalidOf marks the cell text as unconvertible, keeping the caught cause.
func InvalidOf[T any](cell RawCell, err error) Result[T] {
	return Result[T]{
		cell:      cell,
		err:       err,
		isInvalid: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// CompletedOf carries a typed value produced from the cell.
func CompletedOf[T any](cell RawCell, v T) Result[T] {
	return Result[T]{
		cell:        cell,
		value:       v,
		isCompleted: true,
		createdAt:   time.Now().UTC(),
		id:          uuid.New(),
	}
}

// Value is meaningful only when IsCompleted reports true.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Cell() RawCell {
	return r.cell
}

func (r Result[T]) IsCompleted() bool {
	return r.isCompleted
}

func (r Result[T]) IsInvalid() bool {
	return r.isInvalid
}

func (r Result[T]) IsEmpty() bool {
	return r.isEmpty
}

// IsPending reports that no item has classified the cell yet.
func (r Result[T]) IsPending() bool {
	return !r.isCompleted && !r.isInvalid && !r.isEmpty
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
