// Package rowmap contains the core data model of the row mapping engine:
// the raw cell, the column locator, the row-value Source interface and the
// tagged Result[T] threaded through pipeline items.
//
// Highlights:
// - Seed/EmptyOf/InvalidOf/CompletedOf: construct Result[T]
// - Item/ItemFunc: one transformation step over Result[T]
// - Locator: column-name or column-index cell lookup against a Source
// - SliceSource: in-memory header+rows Source for tests and examples
// - ColumnNotFoundError/MappingError: the error surface pipelines report
//
// Subpackages build the engine on top: convert (typed text converters),
// item (built-in pipeline items), pipe (column and default pipelines),
// reader (single/multi/split cell readers), enum (collection-typed fields)
// and sheet (concurrent whole-sheet runs).
package rowmap
