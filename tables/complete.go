package tables

import (
	"github.com/tsawler/ergscan/model"
)

// minMetersForRate is the meters reading below which a final data row
// may legitimately lack a stroke rate: very short last segments end
// before the instrument settles on a rate.
const minMetersForRate = 100

// defaultExpectedRows is the row count assumed for progress scoring
// before any data rows have been observed, keeping the progress signal
// stable for the capture loop.
const defaultExpectedRows = 5

// coreFieldsPerRow counts time, meters, split and stroke rate.
const coreFieldsPerRow = 4

// IsComplete reports whether an accumulated table has enough populated
// fields for the capture loop to stop. Complete means: the workout
// type is known, the averages row has all four core fields, every data
// row has time, meters and split, and every data row has a stroke rate
// except possibly the last when its meters reading is under
// minMetersForRate.
func IsComplete(table *model.RecognizedTable) bool {
	if table == nil || table.WorkoutType == "" {
		return false
	}
	if table.Averages == nil || table.Averages.CoreFieldCount() < coreFieldsPerRow {
		return false
	}

	for i, row := range table.Rows {
		if row.Time == nil || row.Meters == nil || row.Split == nil {
			return false
		}
		if row.StrokeRate != nil {
			continue
		}
		if i < len(table.Rows)-1 {
			return false
		}
		// last row: a missing rate is fine only for a short segment
		meters, ok := row.MetersValue()
		if !ok || meters >= minMetersForRate {
			return false
		}
	}

	return true
}

// FieldProgress reports the fraction of expected fields currently
// populated, in [0,1]. The expectation covers the workout type, the
// averages row's four core fields, and four core fields per data row;
// until any data rows have been observed, defaultExpectedRows rows are
// assumed.
func FieldProgress(table *model.RecognizedTable) float64 {
	if table == nil {
		return 0
	}

	expectedRows := len(table.Rows)
	if expectedRows == 0 {
		expectedRows = defaultExpectedRows
	}
	expected := 1 + coreFieldsPerRow + expectedRows*coreFieldsPerRow

	populated := 0
	if table.WorkoutType != "" {
		populated++
	}
	populated += table.Averages.CoreFieldCount()
	for _, row := range table.Rows {
		populated += row.CoreFieldCount()
	}

	progress := float64(populated) / float64(expected)
	if progress > 1 {
		progress = 1
	}
	return progress
}
