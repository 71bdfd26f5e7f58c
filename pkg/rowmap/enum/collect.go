package enum

import "fmt"

// Collection construction strategies over the ordered element list Values
// produces. The slice itself is the default strategy; these cover the other
// common target shapes.

// ToSet folds the elements into a set, dropping duplicates.
func ToSet[E comparable](vals []E) map[E]struct{} {
	set := make(map[E]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

// Fill copies the elements into a fixed-size destination (an array slice or a
// pre-sized field) and fails when they do not fit.
func Fill[E any](dst []E, vals []E) error {
	if len(vals) > len(dst) {
		return fmt.Errorf("enum: %d values do not fit a destination of %d", len(vals), len(dst))
	}
	copy(dst, vals)
	return nil
}
