package item

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ib-77/rowmap/pkg/rowmap"
	"github.com/ib-77/rowmap/pkg/rowmap/convert"
)

// ChangeType is the canonical built-in item: a pending cell with empty text
// becomes Empty, otherwise the text is converted to T. A conversion failure
// is caught into an Invalid outcome and never escapes the item.
func ChangeType[T any](fn convert.Func[T]) rowmap.Item[T] {
	if fn == nil {
		panic(fmt.Errorf("item: change-type converter: %w", rowmap.ErrNullConfiguration))
	}
	return rowmap.ItemFunc[T](func(in rowmap.Result[T]) rowmap.Result[T] {
		if !in.IsPending() {
			return in
		}

		cell := in.Cell()
		if cell.Text == "" {
			return rowmap.EmptyOf[T](cell)
		}

		v, err := tryConvert(fn, cell.Text)
		if err != nil {
			return rowmap.InvalidOf[T](cell, err)
		}
		return rowmap.CompletedOf(cell, v)
	})
}

// tryConvert shields the pipeline from converters that panic instead of
// returning an error.
func tryConvert[T any](fn convert.Func[T], text string) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("conversion panicked: %v", r)
		}
	}()
	return fn(text)
}

// Trim normalizes a pending cell's text by stripping surrounding whitespace.
// Placed before ChangeType it makes " 42 " parse and "   " read as empty.
func Trim[T any]() rowmap.Item[T] {
	return rowmap.ItemFunc[T](func(in rowmap.Result[T]) rowmap.Result[T] {
		if !in.IsPending() {
			return in
		}
		cell := in.Cell()
		cell.Text = strings.TrimSpace(cell.Text)
		return rowmap.Seed[T](cell)
	})
}

// Validate post-processes a Completed value; an invalid one downgrades the
// result to Invalid with the supplied message.
func Validate[T any](check func(v T) (valid bool, errMsg string)) rowmap.Item[T] {
	if check == nil {
		panic(fmt.Errorf("item: validate check: %w", rowmap.ErrNullConfiguration))
	}
	return rowmap.ItemFunc[T](func(in rowmap.Result[T]) rowmap.Result[T] {
		if !in.IsCompleted() {
			return in
		}
		if valid, errMsg := check(in.Value()); !valid {
			return rowmap.InvalidOf[T](in.Cell(), errors.New(errMsg))
		}
		return in
	})
}

var ruleValidator = validator.New()

// Rule validates a Completed value against a go-playground/validator tag,
// e.g. "gte=0,lte=130" or "email".
func Rule[T any](tag string) rowmap.Item[T] {
	if tag == "" {
		panic(fmt.Errorf("item: rule tag: %w", rowmap.ErrNullConfiguration))
	}
	return rowmap.ItemFunc[T](func(in rowmap.Result[T]) rowmap.Result[T] {
		if !in.IsCompleted() {
			return in
		}
		if err := ruleValidator.Var(in.Value(), tag); err != nil {
			return rowmap.InvalidOf[T](in.Cell(), err)
		}
		return in
	})
}
