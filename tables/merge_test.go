package tables

import (
	"testing"
	"time"

	"github.com/tsawler/ergscan/model"
)

func TestMerge_NilExisting(t *testing.T) {
	incoming := model.NewRecognizedTable()
	incoming.WorkoutType = "2000m"
	if got := Merge(nil, incoming); got != incoming {
		t.Error("Expected incoming table returned unchanged")
	}
}

func TestMerge_CellPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		existing     *model.Cell
		incoming     *model.Cell
		expectedText string
		expectedConf float64
	}{
		{"higher incoming wins", model.NewCell("5:00", 0.6), model.NewCell("5:01", 0.9), "5:01", 0.9},
		{"higher existing wins", model.NewCell("5:00", 0.9), model.NewCell("5:01", 0.6), "5:00", 0.9},
		{"absent existing", nil, model.NewCell("5:01", 0.4), "5:01", 0.4},
		{"absent incoming", model.NewCell("5:00", 0.4), nil, "5:00", 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := model.NewRecognizedTable()
			existing.Averages = &model.TableRow{Time: tt.existing}
			incoming := model.NewRecognizedTable()
			incoming.Averages = &model.TableRow{Time: tt.incoming}

			merged := Merge(existing, incoming)
			if merged.Averages.Time == nil {
				t.Fatal("Expected merged time cell")
			}
			if merged.Averages.Time.Text != tt.expectedText || merged.Averages.Time.Confidence != tt.expectedConf {
				t.Errorf("Got %q %v, expected %q %v",
					merged.Averages.Time.Text, merged.Averages.Time.Confidence, tt.expectedText, tt.expectedConf)
			}
		})
	}
}

func TestMerge_MetadataPrefersIncoming(t *testing.T) {
	date1 := time.Date(2025, 9, 21, 0, 0, 0, 0, time.UTC)

	existing := model.NewRecognizedTable()
	existing.WorkoutType = "2000m"
	existing.Category = model.CategorySingle
	existing.Date = &date1
	existing.TotalTime = "7:00.0"

	incoming := model.NewRecognizedTable()
	incoming.TotalTime = "6:59.9"

	merged := Merge(existing, incoming)
	if merged.WorkoutType != "2000m" {
		t.Errorf("Expected existing workout type kept, got %q", merged.WorkoutType)
	}
	if merged.Category != model.CategorySingle {
		t.Errorf("Expected existing category kept, got %v", merged.Category)
	}
	if merged.Date == nil || !merged.Date.Equal(date1) {
		t.Errorf("Expected existing date kept, got %v", merged.Date)
	}
	if merged.TotalTime != "6:59.9" {
		t.Errorf("Expected incoming total time preferred, got %q", merged.TotalTime)
	}
}

func TestMerge_RowsIndexAligned(t *testing.T) {
	existing := model.NewRecognizedTable()
	existing.Rows = []*model.TableRow{
		{Time: model.NewCell("4:00.0", 0.8)},
		{Time: model.NewCell("4:01.0", 0.7)},
	}

	incoming := model.NewRecognizedTable()
	incoming.Rows = []*model.TableRow{
		{Meters: model.NewCell("1000", 0.9)},
	}

	merged := Merge(existing, incoming)
	if len(merged.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(merged.Rows))
	}
	if merged.Rows[0].Time == nil || merged.Rows[0].Meters == nil {
		t.Errorf("Expected first row to combine both sides: %s", merged.Rows[0])
	}
	if merged.Rows[1].Time == nil || merged.Rows[1].Time.Text != "4:01.0" {
		t.Errorf("Expected one-sided row carried through: %s", merged.Rows[1])
	}
}

func TestMerge_ConfidenceIsMax(t *testing.T) {
	existing := model.NewRecognizedTable()
	existing.AverageConfidence = 0.8
	incoming := model.NewRecognizedTable()
	incoming.AverageConfidence = 0.5

	if merged := Merge(existing, incoming); merged.AverageConfidence != 0.8 {
		t.Errorf("Expected max confidence 0.8, got %v", merged.AverageConfidence)
	}

	incoming.AverageConfidence = 0.95
	if merged := Merge(existing, incoming); merged.AverageConfidence != 0.95 {
		t.Errorf("Expected max confidence 0.95, got %v", merged.AverageConfidence)
	}
}

func TestMerge_OrderDependence(t *testing.T) {
	first := model.NewRecognizedTable()
	first.TotalTime = "7:00.0"
	second := model.NewRecognizedTable()
	second.TotalTime = "6:59.9"

	forward := Merge(first, second)
	backward := Merge(second, first)
	if forward.TotalTime == backward.TotalTime {
		t.Error("Expected merge order to matter for populated metadata")
	}
}
