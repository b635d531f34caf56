// Package form keeps the live validity snapshot of a set of named fields.
//
// A Form is built from an ordered list of Field declarations. Each SetField
// stores the raw value, re-evaluates that field and every field holding an
// EqualsField rule that points at it, then updates overall validity. The form
// does no I/O and has no hidden state: errors are always a function of the
// current values and the declared rules.
package form
