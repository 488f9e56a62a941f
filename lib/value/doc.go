// Package value implements a typed, recursive property-list value.
//
// A Value is one of exactly six variants: Date, Binary, Number, Text, List,
// and Map. Containers own their children; equality is structural. Lookups
// that can miss return a mo.Option instead of an error, and mutations that
// do not apply to the current variant are silent no-ops.
//
// Values perform no I/O and hold no locks. A Value shared across goroutines
// is safe for concurrent readers; any call to Set requires exclusive access
// to the value being mutated.
package value
