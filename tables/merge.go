package tables

import (
	"github.com/tsawler/ergscan/model"
)

// Merge combines a newly parsed table with the table accumulated from
// prior capture attempts. When existing is nil the new table is
// returned unchanged. Otherwise metadata prefers the new capture's
// value wherever one is present, and rows merge cell by cell at the
// same index, keeping whichever side's cell has the higher confidence.
// Rows present on only one side carry through unchanged.
//
// The aggregate confidence becomes the maximum of the two inputs'
// aggregates ("best single observation so far") rather than being
// recomputed from the merged cells; callers wanting the strict mean
// can assign RecomputeConfidence afterwards.
//
// Merges must be applied in capture order: the metadata preference for
// the newer side makes the operation order-dependent.
func Merge(existing, incoming *model.RecognizedTable) *model.RecognizedTable {
	if existing == nil {
		return incoming
	}
	if incoming == nil {
		return existing
	}

	merged := model.NewRecognizedTable()
	merged.WorkoutType = preferString(incoming.WorkoutType, existing.WorkoutType)
	merged.Description = preferString(incoming.Description, existing.Description)
	merged.TotalTime = preferString(incoming.TotalTime, existing.TotalTime)
	merged.WorkPerRep = preferString(incoming.WorkPerRep, existing.WorkPerRep)
	merged.RestPerRep = preferString(incoming.RestPerRep, existing.RestPerRep)

	merged.Reps = incoming.Reps
	if merged.Reps == 0 {
		merged.Reps = existing.Reps
	}

	merged.Category = incoming.Category
	if merged.Category == model.CategoryUnknown {
		merged.Category = existing.Category
	}

	merged.Date = incoming.Date
	if merged.Date == nil {
		merged.Date = existing.Date
	}

	merged.Averages = mergeRows(existing.Averages, incoming.Averages)

	length := len(existing.Rows)
	if len(incoming.Rows) > length {
		length = len(incoming.Rows)
	}
	for i := 0; i < length; i++ {
		var left, right *model.TableRow
		if i < len(existing.Rows) {
			left = existing.Rows[i]
		}
		if i < len(incoming.Rows) {
			right = incoming.Rows[i]
		}
		merged.Rows = append(merged.Rows, mergeRows(left, right))
	}

	merged.AverageConfidence = existing.AverageConfidence
	if incoming.AverageConfidence > merged.AverageConfidence {
		merged.AverageConfidence = incoming.AverageConfidence
	}

	return merged
}

// mergeRows merges two observations of the same table row cell by cell
func mergeRows(existing, incoming *model.TableRow) *model.TableRow {
	if existing == nil {
		return incoming
	}
	if incoming == nil {
		return existing
	}

	bbox := incoming.BBox
	if bbox.IsEmpty() {
		bbox = existing.BBox
	}

	return &model.TableRow{
		Time:       mergeCell(existing.Time, incoming.Time),
		Meters:     mergeCell(existing.Meters, incoming.Meters),
		Split:      mergeCell(existing.Split, incoming.Split),
		StrokeRate: mergeCell(existing.StrokeRate, incoming.StrokeRate),
		HeartRate:  mergeCell(existing.HeartRate, incoming.HeartRate),
		BBox:       bbox,
	}
}

// mergeCell keeps the present cell, or the higher-confidence one when
// both sides observed a value.
func mergeCell(existing, incoming *model.Cell) *model.Cell {
	if existing == nil {
		return incoming
	}
	if incoming == nil {
		return existing
	}
	if incoming.Confidence >= existing.Confidence {
		return incoming
	}
	return existing
}

// preferString keeps the newer value when present
func preferString(incoming, existing string) string {
	if incoming != "" {
		return incoming
	}
	return existing
}
