// Package layout provides spatial analysis of recognizer detections,
// grouping loose text detections into display rows by vertical
// proximity.
package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/ergscan/model"
)

// Row represents a single horizontal line of the display: the member
// detections sorted left to right, and their combined bounding box.
type Row struct {
	// Detections are the member detections (sorted left to right)
	Detections []model.GuideRelativeDetection

	// BBox is the union of the member bounding boxes
	BBox model.BBox

	// Index is the row's position on the display (0-based, top to bottom)
	Index int
}

// Text returns the row's member texts joined with single spaces.
func (r *Row) Text() string {
	if r == nil || len(r.Detections) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Detections))
	for _, d := range r.Detections {
		parts = append(parts, d.Text)
	}
	return strings.Join(parts, " ")
}

// IsEmpty returns true if the row has no text content
func (r *Row) IsEmpty() bool {
	if r == nil {
		return true
	}
	return strings.TrimSpace(r.Text()) == ""
}

// Config holds configuration for row detection
type Config struct {
	// VerticalTolerance is the maximum difference between a detection's
	// vertical center and a row's reference (first) member's vertical
	// center for the detection to join that row, as a fraction of the
	// display region height (default: 0.03)
	VerticalTolerance float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		VerticalTolerance: 0.03,
	}
}

// RowDetector groups detections into display rows
type RowDetector struct {
	config Config
}

// NewRowDetector creates a row detector with default configuration
func NewRowDetector() *RowDetector {
	return &RowDetector{config: DefaultConfig()}
}

// NewRowDetectorWithConfig creates a row detector with custom configuration
func NewRowDetectorWithConfig(config Config) *RowDetector {
	return &RowDetector{config: config}
}

// Detect clusters detections into rows.
//
// Detections are visited in ascending vertical-center order. Each
// detection joins the first existing row whose reference member (the
// row's first detection) has a vertical center within the tolerance;
// otherwise it starts a new row. Assignment is final: rows are never
// split or merged afterwards. Display detection counts are small, so
// the quadratic scan is fine.
func (d *RowDetector) Detect(detections []model.GuideRelativeDetection) []*Row {
	if len(detections) == 0 {
		return nil
	}

	sorted := make([]model.GuideRelativeDetection, len(detections))
	copy(sorted, detections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Center().Y < sorted[j].Center().Y
	})

	var rows []*Row
	for _, det := range sorted {
		assigned := false
		for _, row := range rows {
			ref := row.Detections[0]
			if absFloat64(det.Center().Y-ref.Center().Y) < d.config.VerticalTolerance {
				row.Detections = append(row.Detections, det)
				assigned = true
				break
			}
		}
		if !assigned {
			rows = append(rows, &Row{Detections: []model.GuideRelativeDetection{det}})
		}
	}

	for i, row := range rows {
		sort.SliceStable(row.Detections, func(a, b int) bool {
			return row.Detections[a].Box.Left() < row.Detections[b].Box.Left()
		})
		row.BBox = detectionsBBox(row.Detections)
		row.Index = i
	}

	return rows
}

// detectionsBBox returns the union bounding box of a detection set
func detectionsBBox(detections []model.GuideRelativeDetection) model.BBox {
	if len(detections) == 0 {
		return model.BBox{}
	}
	bbox := detections[0].Box
	for _, det := range detections[1:] {
		bbox = bbox.Union(det.Box)
	}
	return bbox
}

func absFloat64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
