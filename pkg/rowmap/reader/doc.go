// Package reader locates the ordered raw cells a field consumes from a row:
// one column by name or index, several explicit columns, or one cell split
// into segments by configurable separators.
//
// CellsReader is a single tagged-variant type with explicit reconfiguration
// operations; split-specific methods validate the current variant instead of
// relying on implicit casts. A reader failure names the missing column and
// the row, it is never silently swallowed.
package reader
