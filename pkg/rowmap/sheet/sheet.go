package sheet

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ib-77/rowmap/pkg/rowmap"
)

// RowResult is the outcome of mapping one row.
type RowResult[T any] struct {
	Row   int
	Value T
	Err   error
}

// RowFunc maps one row of a source into a value, typically by executing one
// or more sealed pipelines. It must not mutate shared configuration.
type RowFunc[T any] func(src rowmap.Source, row int) (T, error)

// Run fans the source's row indexes over the given number of lines (worker
// goroutines) and emits one RowResult per processed row. Rows are independent
// and arrive in no particular order; cancellation stops feeding and drains
// the workers. The output channel closes when all lines finish.
func Run[T any](ctx context.Context, src rowmap.Source, fn RowFunc[T], lines int) <-chan RowResult[T] {
	if lines < 1 {
		lines = 1
	}

	rows := make(chan int)
	go func() {
		defer close(rows)
		for row := range src.RowCount() {
			select {
			case rows <- row:
			case <-ctx.Done():
				return
			}
		}
	}()

	out := make(chan RowResult[T])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case row, ok := <-rows:
					if !ok {
						return
					}
					v, err := fn(src, row)
					select {
					case out <- RowResult[T]{Row: row, Value: v, Err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Collect drains the result channel and returns the results in row order.
func Collect[T any](ctx context.Context, in <-chan RowResult[T]) []RowResult[T] {
	res := make([]RowResult[T], 0)
	for {
		select {
		case r, ok := <-in:
			if !ok {
				slices.SortFunc(res, func(a, b RowResult[T]) int { return a.Row - b.Row })
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			slices.SortFunc(res, func(a, b RowResult[T]) int { return a.Row - b.Row })
			return res
		}
	}
}

// Logged wraps a RowFunc with per-row failure logging.
func Logged[T any](log zerolog.Logger, fn RowFunc[T]) RowFunc[T] {
	return func(src rowmap.Source, row int) (T, error) {
		v, err := fn(src, row)
		if err != nil {
			log.Warn().Int("row", row).Err(err).Msg("row mapping failed")
		}
		return v, err
	}
}
