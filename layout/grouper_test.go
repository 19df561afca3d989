package layout

import (
	"testing"

	"github.com/tsawler/ergscan/model"
)

// makeDetection creates a test detection centered at (x, y)
func makeDetection(text string, x, y float64) model.GuideRelativeDetection {
	return model.GuideRelativeDetection{
		Text:       text,
		Confidence: 0.9,
		Box:        model.NewBBox(x-0.05, y-0.02, 0.1, 0.04),
	}
}

func TestRowDetector_Empty(t *testing.T) {
	detector := NewRowDetector()
	if rows := detector.Detect(nil); rows != nil {
		t.Errorf("Expected nil rows, got %d", len(rows))
	}
}

func TestRowDetector_ToleranceBand(t *testing.T) {
	// vertical centers 0.10, 0.11 and 0.50 with tolerance 0.03 must
	// produce two rows
	detector := NewRowDetector()
	detections := []model.GuideRelativeDetection{
		makeDetection("a", 0.1, 0.10),
		makeDetection("b", 0.3, 0.11),
		makeDetection("c", 0.1, 0.50),
	}

	rows := detector.Detect(detections)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if len(rows[0].Detections) != 2 {
		t.Errorf("Expected first row to hold 2 detections, got %d", len(rows[0].Detections))
	}
	if rows[1].Detections[0].Text != "c" {
		t.Errorf("Expected second row to hold 'c', got %q", rows[1].Detections[0].Text)
	}
}

func TestRowDetector_ReferenceMember(t *testing.T) {
	// tolerance is measured against a row's first member, not its
	// latest: 0.10, 0.125, 0.145 with tolerance 0.03 drifts past the
	// reference and splits
	detector := NewRowDetector()
	detections := []model.GuideRelativeDetection{
		makeDetection("a", 0.1, 0.100),
		makeDetection("b", 0.3, 0.125),
		makeDetection("c", 0.5, 0.145),
	}

	rows := detector.Detect(detections)
	if len(rows) != 2 {
		t.Fatalf("Expected drift to split into 2 rows, got %d", len(rows))
	}
	if len(rows[0].Detections) != 2 {
		t.Errorf("Expected first row to hold a and b, got %d detections", len(rows[0].Detections))
	}
}

func TestRowDetector_LeftToRightOrder(t *testing.T) {
	detector := NewRowDetector()
	detections := []model.GuideRelativeDetection{
		makeDetection("right", 0.8, 0.2),
		makeDetection("left", 0.1, 0.2),
		makeDetection("middle", 0.5, 0.21),
	}

	rows := detector.Detect(detections)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Text(); got != "left middle right" {
		t.Errorf("Expected 'left middle right', got %q", got)
	}
}

func TestRowDetector_RowsTopToBottom(t *testing.T) {
	detector := NewRowDetector()
	detections := []model.GuideRelativeDetection{
		makeDetection("bottom", 0.1, 0.9),
		makeDetection("top", 0.1, 0.1),
		makeDetection("middle", 0.1, 0.5),
	}

	rows := detector.Detect(detections)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	expected := []string{"top", "middle", "bottom"}
	for i, want := range expected {
		if rows[i].Text() != want {
			t.Errorf("Row %d: expected %q, got %q", i, want, rows[i].Text())
		}
		if rows[i].Index != i {
			t.Errorf("Row %d: expected index %d, got %d", i, i, rows[i].Index)
		}
	}
}

func TestRowDetector_BBoxUnion(t *testing.T) {
	detector := NewRowDetector()
	detections := []model.GuideRelativeDetection{
		makeDetection("a", 0.1, 0.2),
		makeDetection("b", 0.8, 0.2),
	}

	rows := detector.Detect(detections)
	bbox := rows[0].BBox
	if bbox.Left() > 0.06 || bbox.Right() < 0.84 {
		t.Errorf("Row bbox %+v does not cover both detections", bbox)
	}
}
