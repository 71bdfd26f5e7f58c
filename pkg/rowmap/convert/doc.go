// Package convert holds the typed text converters the pipeline's change-type
// item is built on. Converters are plain func(string) (T, error) values
// selected per target type at configuration time, so no reflection runs while
// rows are being mapped.
//
// Built-ins cover string, bool, the integer and float families, time.Time and
// time.Duration, delegating the parsing to spf13/cast. Register installs a
// custom converter that shadows the built-in for its type.
package convert
