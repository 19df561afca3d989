// Package tables assembles recognized workout tables from classified
// display rows and manages their life across capture attempts.
//
// # Building
//
// [Builder.Build] turns one capture's guide-relative detections into a
// [model.RecognizedTable]: rows are grouped spatially, classified, and
// walked top to bottom. Metadata is taken on first sighting, the first
// data row after the column header becomes the averages row, and
// sparse rows are dropped as noise.
//
// # Merging
//
// Captures are noisy, so one frame rarely yields a full table.
// [Merge] folds a fresh parse into the accumulated table, preferring
// populated and higher-confidence values. Merges are order-dependent
// and must be applied in capture order.
//
// # Completeness
//
// [IsComplete] decides when the accumulated table is good enough to
// stop capturing; [FieldProgress] scores partial progress for the
// capture loop's feedback.
package tables
