package match

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Landmark is a static label printed on the display, recognized only
// to anchor row classification. Landmarks are never persisted.
type Landmark int

const (
	LandmarkNone Landmark = iota
	LandmarkViewDetail
	LandmarkTotalTime
	LandmarkSplitHeader // the "/500m" column header
	LandmarkMeters
	LandmarkStrokeRate // the "s/m" column header
	LandmarkTime
)

// String returns a string representation of the landmark
func (l Landmark) String() string {
	switch l {
	case LandmarkViewDetail:
		return "view detail"
	case LandmarkTotalTime:
		return "total time"
	case LandmarkSplitHeader:
		return "/500m"
	case LandmarkMeters:
		return "meter"
	case LandmarkStrokeRate:
		return "s/m"
	case LandmarkTime:
		return "time"
	default:
		return "none"
	}
}

// landmarkCheck pairs a canonical label with its edit-distance
// threshold. Short labels get a tighter threshold so noise does not
// fuzzy-match them.
type landmarkCheck struct {
	landmark  Landmark
	label     string
	threshold int
}

// Check order is load-bearing: "/500m" must precede the generic meter
// label (it contains "m"), and "time" goes last so it cannot shadow
// "total time".
var landmarkChecks = []landmarkCheck{
	{LandmarkViewDetail, "view detail", 2},
	{LandmarkTotalTime, "total time", 2},
	{LandmarkSplitHeader, "/500m", 2},
	{LandmarkMeters, "meter", 2},
	{LandmarkStrokeRate, "s/m", 1},
	{LandmarkTime, "time", 2},
}

// MatchLandmark identifies the display label a candidate string refers
// to, tolerating OCR noise. The candidate is lowercased, then accepted
// for a label if it contains the label exactly or is within the
// label's edit-distance threshold.
func MatchLandmark(text string) (Landmark, bool) {
	candidate := strings.ToLower(strings.TrimSpace(text))
	if candidate == "" {
		return LandmarkNone, false
	}

	for _, check := range landmarkChecks {
		if strings.Contains(candidate, check.label) {
			return check.landmark, true
		}
		if levenshtein.Distance(candidate, check.label, nil) <= check.threshold {
			return check.landmark, true
		}
	}
	return LandmarkNone, false
}
