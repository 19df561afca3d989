// Package guide maps raw recognizer detections into the canonical
// coordinate space of the instrument's display region (the "guide"):
// a normalized 0-1 space with a top-left origin. It also crops the
// guide region out of a captured frame so the recognizer sees only
// the screen.
package guide

import (
	"github.com/tsawler/ergscan/model"
)

// Origin identifies the coordinate origin convention of a detection
// producer.
type Origin int

const (
	// OriginTopLeft means Y grows downward, the guide convention
	OriginTopLeft Origin = iota

	// OriginBottomLeft means Y grows upward, as some vision
	// frameworks report
	OriginBottomLeft
)

// Config holds mapping configuration
type Config struct {
	// Origin is the producer's coordinate origin convention
	Origin Origin

	// Region is the guide region within the producer's space; raw
	// boxes are rebased onto it. Zero value means the producer's
	// space already is the guide region.
	Region model.BBox

	// Margin expands the unit square for the out-of-bounds filter;
	// detections whose center falls outside the expanded square are
	// discarded as noise (default: 0.1)
	Margin float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Origin: OriginTopLeft,
		Margin: 0.1,
	}
}

// Mapper converts raw detections into guide-relative detections
type Mapper struct {
	config Config
}

// NewMapper creates a mapper with default configuration
func NewMapper() *Mapper {
	return NewMapperWithConfig(DefaultConfig())
}

// NewMapperWithConfig creates a mapper with custom configuration
func NewMapperWithConfig(config Config) *Mapper {
	if config.Margin <= 0 {
		config.Margin = DefaultConfig().Margin
	}
	return &Mapper{config: config}
}

// Map converts detections into the guide space and drops the ones
// whose center lands outside the margin-expanded unit square.
func (m *Mapper) Map(detections []model.Detection) []model.GuideRelativeDetection {
	bounds := model.UnitSquare().Expand(m.config.Margin)

	var mapped []model.GuideRelativeDetection
	for _, det := range detections {
		box := m.mapBox(det.Box)
		if !bounds.Contains(box.Center()) {
			continue
		}
		mapped = append(mapped, model.GuideRelativeDetection{
			Text:       det.Text,
			Confidence: det.Confidence,
			Box:        box,
		})
	}
	return mapped
}

// mapBox flips and rebases one bounding box into the guide space
func (m *Mapper) mapBox(box model.BBox) model.BBox {
	if m.config.Origin == OriginBottomLeft {
		box.Y = 1 - box.Y - box.Height
	}

	region := m.config.Region
	if !region.IsValid() {
		return box
	}
	return model.BBox{
		X:      (box.X - region.X) / region.Width,
		Y:      (box.Y - region.Y) / region.Height,
		Width:  box.Width / region.Width,
		Height: box.Height / region.Height,
	}
}
