// Package classify assigns each grouped display row a role: the
// workout-type row, the date row, the column-header row, a data row,
// or unknown. Metadata grammars are tried first, junk tokens are
// filtered out, and data rows have their detections slotted into the
// table's semantic columns.
package classify
