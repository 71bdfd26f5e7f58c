// Package enum maps collection-typed fields: a cell values reader yields N
// raw cells for a row, the per-element pipeline runs once per cell with its
// own Empty/Invalid fallback handling, and the Completed values fold into the
// target collection in reader order.
//
// Whether one unresolved Invalid element aborts the field or is dropped is a
// configurable policy (AbortOnInvalid, the default, or DropInvalid).
package enum
