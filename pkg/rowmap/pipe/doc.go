// Package pipe executes one field's value pipeline against a row: locate the
// cell, thread it through the ordered items, then resolve the terminal
// outcome through the Empty/Invalid fallback policy.
//
// Key constructs:
// - Pipeline: locator + items + fallbacks, fluent setup, sealed on first run
// - Pipeline.Execute/ExecuteCell: run against a row or an already-located cell
// - DefaultPipeline: auto-configured from a member name and its type, with
//   WithColumnName/WithColumnIndex overrides that keep prior configuration
//
// Configuration is single-threaded setup-phase work; execution over distinct
// rows may be concurrent once the pipeline is sealed.
package pipe
