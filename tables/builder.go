package tables

import (
	"io"
	"log/slog"

	"github.com/tsawler/ergscan/classify"
	"github.com/tsawler/ergscan/layout"
	"github.com/tsawler/ergscan/match"
	"github.com/tsawler/ergscan/model"
)

// Config holds builder configuration
type Config struct {
	// RowTolerance is the vertical tolerance for row grouping, as a
	// fraction of the display region height (default: 0.03)
	RowTolerance float64

	// MinRowFields is the minimum number of populated core fields for
	// a data row to be kept; rows below it are noise (default: 2)
	MinRowFields int

	// Logger receives the phase-by-phase diagnostic trace at Debug
	// level. It carries no semantic contract; nil discards the trace.
	Logger *slog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		RowTolerance: 0.03,
		MinRowFields: 2,
	}
}

// Builder assembles a RecognizedTable from guide-relative detections:
// it groups them into rows, classifies every row, and walks the
// classified rows in display order extracting metadata, the averages
// row, and the data rows.
type Builder struct {
	config     Config
	detector   *layout.RowDetector
	classifier *classify.Classifier
	logger     *slog.Logger
}

// NewBuilder creates a builder with default configuration
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultConfig())
}

// NewBuilderWithConfig creates a builder with custom configuration
func NewBuilderWithConfig(config Config) *Builder {
	if config.RowTolerance <= 0 {
		config.RowTolerance = DefaultConfig().RowTolerance
	}
	if config.MinRowFields <= 0 {
		config.MinRowFields = DefaultConfig().MinRowFields
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{
		config:     config,
		detector:   layout.NewRowDetectorWithConfig(layout.Config{VerticalTolerance: config.RowTolerance}),
		classifier: classify.NewClassifier(),
		logger:     logger,
	}
}

// Build parses one capture's detections into a table. Detections must
// already be guide-relative and in-bounds (see the guide package).
//
// Metadata fields are set on first sighting only; later duplicates
// never overwrite. The first data row after the header row becomes the
// averages row, and its time also seeds the total time. Data rows with
// fewer than MinRowFields populated core fields are dropped as noise.
func (b *Builder) Build(detections []model.GuideRelativeDetection) *model.RecognizedTable {
	table := model.NewRecognizedTable()

	rows := b.detector.Detect(detections)
	b.logger.Debug("grouped detections", "detections", len(detections), "rows", len(rows))

	seenHeader := false
	for _, row := range rows {
		cls := b.classifier.Classify(row)
		b.logger.Debug("classified row", "index", row.Index, "role", cls.Role.String(), "text", row.Text())

		switch cls.Role {
		case classify.RoleWorkoutType:
			if table.WorkoutType == "" {
				b.applyWorkoutType(table, cls)
			}
		case classify.RoleDate:
			if table.Date == nil {
				date := cls.Date
				table.Date = &date
			}
		case classify.RoleHeader:
			seenHeader = true
		case classify.RoleDataRow:
			b.applyDataRow(table, cls.Row, seenHeader)
		}
	}

	table.AverageConfidence = table.RecomputeConfidence()
	b.logger.Debug("built table",
		"workoutType", table.WorkoutType,
		"dataRows", len(table.Rows),
		"confidence", table.AverageConfidence)
	return table
}

// applyWorkoutType fills the workout metadata from a descriptor row
func (b *Builder) applyWorkoutType(table *model.RecognizedTable, cls classify.Classification) {
	table.WorkoutType = cls.WorkoutType
	table.Description = cls.RawText

	if match.IsIntervalDescriptor(cls.WorkoutType) {
		table.Category = model.CategoryInterval
	} else {
		table.Category = model.CategorySingle
	}

	if interval, ok := match.DecomposeInterval(cls.WorkoutType); ok {
		table.Reps = interval.Reps
		table.WorkPerRep = interval.WorkTime
		table.RestPerRep = interval.RestTime
	}
}

// applyDataRow promotes or appends a data row, enforcing the minimum
// populated-field rule for both cases.
func (b *Builder) applyDataRow(table *model.RecognizedTable, row *model.TableRow, seenHeader bool) {
	if row.CoreFieldCount() < b.config.MinRowFields {
		b.logger.Debug("dropped sparse row", "fields", row.CoreFieldCount())
		return
	}

	if seenHeader && table.Averages == nil {
		table.Averages = row
		if table.TotalTime == "" && row.Time != nil {
			table.TotalTime = row.Time.Text
		}
		b.logger.Debug("promoted averages row", "row", row.String())
		return
	}

	table.Rows = append(table.Rows, row)
}
