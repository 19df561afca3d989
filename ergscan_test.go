package ergscan

import (
	"testing"

	"github.com/tsawler/ergscan/guide"
	"github.com/tsawler/ergscan/model"
)

// capture builds guide-relative detections from a text grid: each entry
// is placed by column and row index, skipping empty strings so sparse
// captures are easy to express.
func capture(rows [][]string, conf float64) []model.GuideRelativeDetection {
	var detections []model.GuideRelativeDetection
	for r, cols := range rows {
		for c, text := range cols {
			if text == "" {
				continue
			}
			detections = append(detections, model.GuideRelativeDetection{
				Text:       text,
				Confidence: conf,
				Box:        model.NewBBox(float64(c)*0.2+0.02, float64(r)*0.08+0.03, 0.15, 0.04),
			})
		}
	}
	return detections
}

func TestParse(t *testing.T) {
	table := Parse(capture([][]string{
		{"3x4:0013:00r"},
		{"Sep: 212025"},
		{"time", "meter", "/500m", "s/m"},
		{"12:00.0", "3000", "2:00.0", "24"},
		{"4:00.0", "1000", "2:00.0", "25"},
	}, 0.85))

	if table.WorkoutType != "3x4:00/3:00r" {
		t.Errorf("Expected repaired workout type, got %q", table.WorkoutType)
	}
	if table.Averages == nil || len(table.Rows) != 1 {
		t.Fatalf("Unexpected table shape: averages=%v rows=%d", table.Averages, len(table.Rows))
	}
}

func TestSession_AccumulatesAcrossCaptures(t *testing.T) {
	session := NewSession()
	if session.Table() != nil || session.Captures() != 0 {
		t.Error("Expected a fresh session to be empty")
	}
	if session.Complete() {
		t.Error("Expected a fresh session to be incomplete")
	}

	// first capture: glare hides the averages rate and the data row's
	// split column
	session.ObserveGuideRelative(capture([][]string{
		{"3x4:0013:00r"},
		{"time", "meter", "/500m", "s/m"},
		{"12:00.0", "3000", "2:00.0", ""},
		{"4:00.0", "1000", "", "25"},
		{"4:00.0", "1000", "", "24"},
		{"4:00.0", "1000", "", "26"},
	}, 0.6))

	if session.Complete() {
		t.Error("Expected incomplete after first capture")
	}
	progress := session.Progress()
	if progress <= 0 || progress >= 1 {
		t.Errorf("Expected partial progress, got %v", progress)
	}

	// second capture: the missing cells resolve, a previously read one
	// arrives at higher confidence
	table := session.ObserveGuideRelative(capture([][]string{
		{"3x4:0013:00r"},
		{"time", "meter", "/500m", "s/m"},
		{"12:00.0", "3000", "2:00.0", "24"},
		{"4:00.0", "1000", "2:00.0", "25"},
		{"4:00.0", "1000", "2:00.0", "24"},
		{"4:00.0", "1000", "2:01.0", "26"},
	}, 0.9))

	if session.Captures() != 2 {
		t.Errorf("Expected 2 captures, got %d", session.Captures())
	}
	if !session.Complete() {
		t.Errorf("Expected complete after second capture: %s", table)
	}
	if session.Progress() != 1 {
		t.Errorf("Expected full progress, got %v", session.Progress())
	}

	if table.Averages.StrokeRate == nil || table.Averages.StrokeRate.Text != "24" {
		t.Errorf("Expected averages rate filled in, got %v", table.Averages.StrokeRate)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("Expected 3 data rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Time.Confidence != 0.9 {
		t.Errorf("Expected higher-confidence reread to win, got %v", table.Rows[0].Time.Confidence)
	}
}

func TestSession_ObserveMapsCoordinates(t *testing.T) {
	// raw detections in a bottom-left space: the descriptor sits near
	// the top of the screen, so its bottom-left Y is large
	session := NewSession().GuideOrigin(guide.OriginBottomLeft)

	table := session.Observe([]model.Detection{
		{Text: "2000m", Confidence: 0.9, Box: model.NewBBox(0.02, 0.90, 0.15, 0.04)},
		{Text: "4:00.0", Confidence: 0.9, Box: model.NewBBox(0.02, 0.60, 0.15, 0.04)},
		{Text: "1000", Confidence: 0.9, Box: model.NewBBox(0.22, 0.60, 0.15, 0.04)},
	})

	if table.WorkoutType != "2000m" {
		t.Errorf("Expected workout type from flipped detections, got %q", table.WorkoutType)
	}
	if len(table.Rows) != 1 {
		t.Errorf("Expected 1 data row, got %d", len(table.Rows))
	}
}

func TestSession_Options(t *testing.T) {
	// a looser tolerance merges two slightly offset lines into one row
	tight := NewSession().RowTolerance(0.01)
	loose := NewSession().RowTolerance(0.1)

	detections := []model.GuideRelativeDetection{
		{Text: "4:00.0", Confidence: 0.9, Box: model.NewBBox(0.02, 0.30, 0.15, 0.04)},
		{Text: "1000", Confidence: 0.9, Box: model.NewBBox(0.22, 0.34, 0.15, 0.04)},
	}

	if got := tight.ObserveGuideRelative(detections); len(got.Rows) != 0 {
		t.Errorf("Expected tight tolerance to split the row, got %d rows", len(got.Rows))
	}
	if got := loose.ObserveGuideRelative(detections); len(got.Rows) != 1 {
		t.Errorf("Expected loose tolerance to keep the row, got %d rows", len(got.Rows))
	}
}

func TestSession_UniqueIDs(t *testing.T) {
	if NewSession().ID() == NewSession().ID() {
		t.Error("Expected distinct session IDs")
	}
}
