// Package match implements the validation grammars for every field
// type the instrument's summary screen displays: elapsed time, 500m
// split, meters, stroke rate, heart rate, workout date, and the
// workout descriptor. It also fuzzy-matches the display's static
// labels (landmarks) and decomposes smeared tokens that encode two
// fields at once.
//
// Every matcher is stateless and signals a mismatch by returning an
// absence value; a mismatch means "try the next hypothesis" and is
// never an error.
package match
