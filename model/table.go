package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WorkoutCategory describes the overall shape of a workout.
type WorkoutCategory int

const (
	CategoryUnknown WorkoutCategory = iota
	CategorySingle                  // one continuous distance or time piece
	CategoryInterval                // repeated work/rest segments
)

// String returns a string representation of the category
func (c WorkoutCategory) String() string {
	switch c {
	case CategorySingle:
		return "single"
	case CategoryInterval:
		return "interval"
	default:
		return "unknown"
	}
}

// Cell is one recognized and validated field value together with the
// recognizer confidence it was read at. A nil *Cell means "not yet
// recognized", never "zero".
type Cell struct {
	Text       string
	Confidence float64 // 0-1
}

// NewCell creates a cell
func NewCell(text string, confidence float64) *Cell {
	return &Cell{Text: text, Confidence: confidence}
}

// IntValue parses the cell text as an integer. Returns false if the
// cell text is not a plain integer (time and split cells are not).
func (c *Cell) IntValue() (int, bool) {
	if c == nil {
		return 0, false
	}
	n, err := strconv.Atoi(c.Text)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TableRow is one row of the recognized table: the four core fields
// every workout row carries, plus an optional heart rate. Nil cells
// are fields the recognizer has not produced a valid reading for yet.
type TableRow struct {
	Time       *Cell
	Meters     *Cell
	Split      *Cell
	StrokeRate *Cell
	HeartRate  *Cell

	// BBox is the union of the member detections' bounding boxes
	BBox BBox
}

// CoreFieldCount returns how many of the four core fields
// (time, meters, split, stroke rate) are populated.
func (r *TableRow) CoreFieldCount() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, c := range []*Cell{r.Time, r.Meters, r.Split, r.StrokeRate} {
		if c != nil {
			count++
		}
	}
	return count
}

// Cells returns all populated cells, heart rate included.
func (r *TableRow) Cells() []*Cell {
	if r == nil {
		return nil
	}
	var cells []*Cell
	for _, c := range []*Cell{r.Time, r.Meters, r.Split, r.StrokeRate, r.HeartRate} {
		if c != nil {
			cells = append(cells, c)
		}
	}
	return cells
}

// MetersValue returns the meters field as an integer
func (r *TableRow) MetersValue() (int, bool) {
	if r == nil {
		return 0, false
	}
	return r.Meters.IntValue()
}

// StrokeRateValue returns the stroke rate field as an integer
func (r *TableRow) StrokeRateValue() (int, bool) {
	if r == nil {
		return 0, false
	}
	return r.StrokeRate.IntValue()
}

// HeartRateValue returns the heart rate field as an integer
func (r *TableRow) HeartRateValue() (int, bool) {
	if r == nil {
		return 0, false
	}
	return r.HeartRate.IntValue()
}

// String renders the row for diagnostics
func (r *TableRow) String() string {
	cell := func(c *Cell) string {
		if c == nil {
			return "-"
		}
		return c.Text
	}
	return fmt.Sprintf("[%s %s %s %s %s]",
		cell(r.Time), cell(r.Meters), cell(r.Split), cell(r.StrokeRate), cell(r.HeartRate))
}

// RecognizedTable is the result of parsing one capture (or the
// accumulation of several): workout metadata, the averages row, the
// per-segment data rows, and an aggregate confidence.
type RecognizedTable struct {
	// WorkoutType is the descriptor text, e.g. "3x4:00/3:00r" or "2000m"
	WorkoutType string

	// Category is derived from the workout type text
	Category WorkoutCategory

	// Date is the workout date, when a date row was recognized
	Date *time.Time

	// TotalTime is the whole-workout elapsed time, seeded from the
	// averages row's time cell
	TotalTime string

	// Interval metadata, populated only for interval workouts
	Reps       int
	WorkPerRep string
	RestPerRep string

	// Description is the raw descriptor row text before repair
	Description string

	// Averages is the table-level summary row
	Averages *TableRow

	// Rows are the per-interval or per-split data rows, display order
	Rows []*TableRow

	// AverageConfidence is the mean confidence across all populated
	// cells (averages row included); 0 if none are populated
	AverageConfidence float64
}

// NewRecognizedTable creates an empty table
func NewRecognizedTable() *RecognizedTable {
	return &RecognizedTable{Category: CategoryUnknown}
}

// AllRows returns the averages row (if any) followed by the data rows.
func (t *RecognizedTable) AllRows() []*TableRow {
	if t == nil {
		return nil
	}
	var rows []*TableRow
	if t.Averages != nil {
		rows = append(rows, t.Averages)
	}
	rows = append(rows, t.Rows...)
	return rows
}

// PopulatedCells returns every populated cell in the table.
func (t *RecognizedTable) PopulatedCells() []*Cell {
	var cells []*Cell
	for _, row := range t.AllRows() {
		cells = append(cells, row.Cells()...)
	}
	return cells
}

// RecomputeConfidence returns the arithmetic mean confidence over all
// populated cells, 0 if none are populated. It does not modify the
// table; callers wanting the strict post-merge mean assign the result
// to AverageConfidence themselves.
func (t *RecognizedTable) RecomputeConfidence() float64 {
	cells := t.PopulatedCells()
	if len(cells) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range cells {
		total += c.Confidence
	}
	return total / float64(len(cells))
}

// String renders the table for diagnostics
func (t *RecognizedTable) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)", t.WorkoutType, t.Category)
	if t.Date != nil {
		fmt.Fprintf(&sb, " %s", t.Date.Format("Jan 2 2006"))
	}
	if t.Averages != nil {
		fmt.Fprintf(&sb, "\navg %s", t.Averages)
	}
	for _, row := range t.Rows {
		fmt.Fprintf(&sb, "\n    %s", row)
	}
	return sb.String()
}
