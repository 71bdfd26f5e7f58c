// Package sheet runs sealed pipelines over every row of a source with a
// configurable number of concurrent lines. Rows are independent, so the only
// contract is that pipeline configuration finished before Run is called.
//
// Key operations:
// - Run: fan row indexes over worker lines, emit RowResult per row
// - Collect: drain the output channel into row-ordered results
// - Logged: wrap a RowFunc with per-row failure logging
package sheet
