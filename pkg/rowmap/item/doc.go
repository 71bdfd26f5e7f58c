// Package item provides the built-in pipeline items. Each item consumes a
// Result[T] and returns a new one, acting only on the outcomes it handles:
//
// - ChangeType: pending -> Empty (no text) / Completed (converted) / Invalid
// - Trim: pending -> pending with whitespace-trimmed text
// - Validate: Completed -> Invalid when a caller check rejects the value
// - Rule: Completed -> Invalid via go-playground/validator var tags
//
// Items compose in caller-controlled order; post-Completed items may still
// act on values produced by earlier steps.
package item
