package ergscan

import (
	"log/slog"

	"github.com/tsawler/ergscan/guide"
)

// sessionOptions holds configuration for a capture session.
type sessionOptions struct {
	rowTolerance float64
	minRowFields int
	guideOrigin  guide.Origin
	guideRegion  guideRegion
	guideMargin  float64
	logger       *slog.Logger
}

// guideRegion is the optional guide sub-rectangle within the
// recognizer's space (zero means the spaces coincide).
type guideRegion struct {
	x, y, width, height float64
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		rowTolerance: 0.03,
		minRowFields: 2,
		guideOrigin:  guide.OriginTopLeft,
		guideMargin:  0.1,
	}
}
