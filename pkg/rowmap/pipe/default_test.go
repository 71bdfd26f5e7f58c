package pipe

import (
	"errors"
	"testing"

	"github.com/ib-77/rowmap/pkg/rowmap"
	"github.com/ib-77/rowmap/pkg/rowmap/item"
)

func TestDefault_LocatesByMemberName(t *testing.T) {
	t.Parallel()

	d := Default[int]("Age")
	if d.Overridden() {
		t.Fatalf("fresh default pipeline should not be overridden")
	}

	v, err := d.Execute(ages(), 0)
	if err != nil || v != 34 {
		t.Fatalf("expected 34 via member-name locator, got %d err=%v", v, err)
	}
}

func TestDefault_OverrideKeepsItemsAndFallback(t *testing.T) {
	t.Parallel()
	src := rowmap.NewSliceSource(
		[]string{"X", "Age"},
		[][]string{
			{"7", "34"},
			{"", "1"},
			{"3", "2"},
		},
	)

	doubled := rowmap.ItemFunc[int](func(in rowmap.Result[int]) rowmap.Result[int] {
		if !in.IsCompleted() {
			return in
		}
		return rowmap.CompletedOf(in.Cell(), in.Value()*2)
	})

	d := Default[int]("Age").
		Append(doubled).
		OnEmpty(func() int { return -1 }).
		WithColumnName("X") // override: execute against X, keep both items and fallback

	if !d.Overridden() {
		t.Fatalf("WithColumnName should install an override")
	}

	if v, err := d.Execute(src, 0); err != nil || v != 14 {
		t.Fatalf("override should read X and keep the doubling item: got %d err=%v", v, err)
	}
	if v, err := d.Execute(src, 1); err != nil || v != -1 {
		t.Fatalf("override should keep the empty fallback: got %d err=%v", v, err)
	}
}

func TestDefault_OverrideByIndex(t *testing.T) {
	t.Parallel()

	d := Default[string]("anything").WithColumnIndex(0)
	v, err := d.Execute(ages(), 2)
	if err != nil || v != "cyd" {
		t.Fatalf("expected cyd via index 0, got %q err=%v", v, err)
	}
}

func TestDefault_LaterConfigurationTargetsOverride(t *testing.T) {
	t.Parallel()

	d := Default[int]("Age").WithColumnIndex(1)
	d.Append(item.Validate(func(v int) (bool, string) { return v != 34, "blocked" }))

	_, err := d.Execute(ages(), 0)
	var me *rowmap.MappingError
	if !errors.As(err, &me) || me.Cause == nil || me.Cause.Error() != "blocked" {
		t.Fatalf("items appended after override should apply, got: %v", err)
	}
}

func TestDefault_UnconvertibleTypePanics(t *testing.T) {
	t.Parallel()

	type opaque struct{ a int }
	defer func() {
		if recover() == nil {
			t.Fatalf("Default for a type with no converter should panic")
		}
	}()
	Default[opaque]("X")
}
