package ergscan

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/tsawler/ergscan/guide"
	"github.com/tsawler/ergscan/model"
	"github.com/tsawler/ergscan/tables"
)

// Session accumulates parse results across repeated capture attempts
// of the same screen until the table is complete. Observations must be
// fed in capture order; the merge prefers newer metadata and
// higher-confidence cells, so reordering changes the outcome.
//
// A Session is not safe for concurrent use; the capture loop drives it
// from one goroutine at a time.
type Session struct {
	id          uuid.UUID
	options     sessionOptions
	accumulated *model.RecognizedTable
	captures    int
}

// NewSession creates a capture session with default options.
// Configure it with the fluent option methods before the first
// observation:
//
//	session := ergscan.NewSession().
//	    GuideOrigin(guide.OriginBottomLeft).
//	    RowTolerance(0.05)
func NewSession() *Session {
	return &Session{
		id:      uuid.New(),
		options: defaultSessionOptions(),
	}
}

// ID returns the session's unique identifier, for correlating capture
// diagnostics and whatever the caller persists.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// RowTolerance sets the vertical tolerance for row grouping, as a
// fraction of the guide region height.
func (s *Session) RowTolerance(tolerance float64) *Session {
	s.options.rowTolerance = tolerance
	return s
}

// MinRowFields sets the minimum populated core fields for a data row
// to be kept.
func (s *Session) MinRowFields(min int) *Session {
	s.options.minRowFields = min
	return s
}

// GuideOrigin sets the coordinate origin convention of the recognizer
// feeding this session.
func (s *Session) GuideOrigin(origin guide.Origin) *Session {
	s.options.guideOrigin = origin
	return s
}

// GuideRegion sets the guide region within the recognizer's coordinate
// space, for recognizers that report boxes relative to the full frame
// rather than the display.
func (s *Session) GuideRegion(x, y, width, height float64) *Session {
	s.options.guideRegion = guideRegion{x: x, y: y, width: width, height: height}
	return s
}

// GuideMargin sets the out-of-bounds filter margin around the unit
// square.
func (s *Session) GuideMargin(margin float64) *Session {
	s.options.guideMargin = margin
	return s
}

// Logger directs the phase-by-phase diagnostic trace to the given
// logger at Debug level.
func (s *Session) Logger(logger *slog.Logger) *Session {
	s.options.logger = logger
	return s
}

// Observe maps one capture's raw detections into the guide space,
// parses them, and merges the result into the accumulated table, which
// it returns.
func (s *Session) Observe(detections []model.Detection) *model.RecognizedTable {
	return s.ObserveGuideRelative(s.mapper().Map(detections))
}

// ObserveGuideRelative is Observe for detections already in the guide
// space.
func (s *Session) ObserveGuideRelative(detections []model.GuideRelativeDetection) *model.RecognizedTable {
	parsed := s.builder().Build(detections)
	s.accumulated = tables.Merge(s.accumulated, parsed)
	s.captures++
	return s.accumulated
}

// Table returns the accumulated table, nil before the first
// observation.
func (s *Session) Table() *model.RecognizedTable {
	return s.accumulated
}

// Captures returns how many observations the session has merged.
func (s *Session) Captures() int {
	return s.captures
}

// Complete reports whether the accumulated table has enough populated
// fields to stop capturing.
func (s *Session) Complete() bool {
	return tables.IsComplete(s.accumulated)
}

// Progress reports the fraction of expected fields populated so far,
// in [0,1].
func (s *Session) Progress() float64 {
	if s.accumulated == nil {
		return 0
	}
	return tables.FieldProgress(s.accumulated)
}

// builder constructs the table builder for the current options
func (s *Session) builder() *tables.Builder {
	return tables.NewBuilderWithConfig(tables.Config{
		RowTolerance: s.options.rowTolerance,
		MinRowFields: s.options.minRowFields,
		Logger:       s.options.logger,
	})
}

// mapper constructs the guide mapper for the current options
func (s *Session) mapper() *guide.Mapper {
	region := s.options.guideRegion
	return guide.NewMapperWithConfig(guide.Config{
		Origin: s.options.guideOrigin,
		Region: model.NewBBox(region.x, region.y, region.width, region.height),
		Margin: s.options.guideMargin,
	})
}
