package pipe

import (
	"errors"
	"testing"

	"github.com/ib-77/rowmap/pkg/rowmap"
	"github.com/ib-77/rowmap/pkg/rowmap/convert"
	"github.com/ib-77/rowmap/pkg/rowmap/item"
)

func ages() *rowmap.SliceSource {
	return rowmap.NewSliceSource(
		[]string{"Name", "Age"},
		[][]string{
			{"ana", "34"},
			{"bob", ""},
			{"cyd", "old"},
		},
	)
}

func agePipeline() *Pipeline[int] {
	return New[int]("Age").Append(item.ChangeType(convert.MustFor[int]()))
}

func TestExecute_Completed(t *testing.T) {
	t.Parallel()

	v, err := agePipeline().Execute(ages(), 0)
	if err != nil || v != 34 {
		t.Fatalf("expected 34, got %d err=%v", v, err)
	}
}

func TestExecute_EmptyPropagatesWithoutFallback(t *testing.T) {
	t.Parallel()

	_, err := agePipeline().Execute(ages(), 1)
	if !rowmap.IsEmptyValue(err) {
		t.Fatalf("expected unresolved Empty, got: %v", err)
	}

	var me *rowmap.MappingError
	if !errors.As(err, &me) || me.Field != "Age" || me.Row != 1 {
		t.Fatalf("error should name field and row, got: %v", err)
	}
}

func TestExecute_EmptyFallback(t *testing.T) {
	t.Parallel()

	p := agePipeline().OnEmpty(func() int { return -1 })
	v, err := p.Execute(ages(), 1)
	if err != nil || v != -1 {
		t.Fatalf("expected fallback -1, got %d err=%v", v, err)
	}
}

func TestExecute_InvalidIsHardErrorWithoutFallback(t *testing.T) {
	t.Parallel()

	_, err := agePipeline().Execute(ages(), 2)
	var me *rowmap.MappingError
	if !errors.As(err, &me) || me.Field != "Age" || me.Row != 2 || me.Cause == nil {
		t.Fatalf("expected MappingError with cause for row 2, got: %v", err)
	}
	if rowmap.IsEmptyValue(err) {
		t.Fatalf("invalid must not read as empty")
	}
}

func TestExecute_InvalidFallback(t *testing.T) {
	t.Parallel()

	p := agePipeline().OnInvalid(func() int { return 0 })
	v, err := p.Execute(ages(), 2)
	if err != nil || v != 0 {
		t.Fatalf("expected fallback 0, got %d err=%v", v, err)
	}
}

func TestExecute_MissingColumnIsNotEmpty(t *testing.T) {
	t.Parallel()

	p := New[int]("Height").Append(item.ChangeType(convert.MustFor[int]())).
		OnEmpty(func() int { return -1 }) // must not mask the missing column

	_, err := p.Execute(ages(), 0)
	var cnf *rowmap.ColumnNotFoundError
	if !errors.As(err, &cnf) || cnf.Column != "Height" || cnf.Row != 0 {
		t.Fatalf("expected ColumnNotFoundError naming Height and row 0, got: %v", err)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	t.Parallel()
	src := ages()
	p := agePipeline()

	v1, err1 := p.Execute(src, 0)
	v2, err2 := p.Execute(src, 0)
	if v1 != v2 || (err1 == nil) != (err2 == nil) {
		t.Fatalf("same pipeline, same row must yield identical outcomes: %d/%v vs %d/%v", v1, err1, v2, err2)
	}
}

func TestExecute_ItemsRunInOrderPostCompleted(t *testing.T) {
	t.Parallel()

	p := New[int]("Age").
		Append(item.ChangeType(convert.MustFor[int]())).
		Append(item.Validate(func(v int) (bool, string) { return v < 10, "too big" })).
		WithColumnIndex(1)

	_, err := p.Execute(ages(), 0)
	var me *rowmap.MappingError
	if !errors.As(err, &me) || me.Cause == nil || me.Cause.Error() != "too big" {
		t.Fatalf("post-completed validation should run and fail, got: %v", err)
	}
}

func TestConfigurationSealedAfterExecute(t *testing.T) {
	t.Parallel()

	p := agePipeline()
	if _, err := p.Execute(ages(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, rowmap.ErrSealed) {
			t.Fatalf("expected ErrSealed panic, got: %v", r)
		}
	}()
	p.WithColumnName("Name")
}

func TestNilFallbackPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, rowmap.ErrNullConfiguration) {
			t.Fatalf("expected ErrNullConfiguration panic, got: %v", r)
		}
	}()
	agePipeline().OnEmpty(nil)
}

func TestExecute_NoItemsResolvesAsEmpty(t *testing.T) {
	t.Parallel()

	// nothing classified the cell; without a fallback that is "no value available"
	_, err := New[int]("Age").Execute(ages(), 0)
	if !rowmap.IsEmptyValue(err) {
		t.Fatalf("a pending terminal outcome should propagate as empty, got: %v", err)
	}
}
