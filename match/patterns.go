package match

import (
	"regexp"
	"strconv"
	"strings"
)

// Stroke rate and heart rate plausibility ranges. Values outside them
// match the digit grammar but cannot be real readings.
const (
	MinStrokeRate = 10
	MaxStrokeRate = 60
	MinHeartRate  = 40
	MaxHeartRate  = 220
)

var (
	// elapsed time: M:SS.s or H:MM:SS.s
	reTime = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?\.\d$`)

	// split pace per 500m: M:SS.s or M:SS.ss
	reSplit = regexp.MustCompile(`^\d:\d{2}\.\d{1,2}$`)

	// meters: plain 1-5 digit integer
	reMeters = regexp.MustCompile(`^\d{1,5}$`)

	// small integers for rate and heart rate
	reRate      = regexp.MustCompile(`^\d{1,2}$`)
	reHeartRate = regexp.MustCompile(`^\d{1,3}$`)

	// interval descriptor: NxWORK/RESTr, work digits/colons with an
	// optional r or m suffix, rest digits/colons with an optional r
	reInterval = regexp.MustCompile(`^(\d{1,2})x([\d:]+[rm]?)/([\d:]+r?)$`)

	// single-piece descriptor: fixed distance "Nm" or fixed time "M:SS"
	reSingleDistance = regexp.MustCompile(`^\d+m$`)
	reSingleTime     = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// MatchTime reports whether text is a valid elapsed-time reading
// such as "20:00.0" or "1:23:45.6".
func MatchTime(text string) bool {
	return reTime.MatchString(text)
}

// MatchSplit reports whether text is a valid 500m split pace such as
// "1:45.2".
func MatchSplit(text string) bool {
	return reSplit.MatchString(text)
}

// MatchMeters parses text as a meters reading (1-5 digit integer).
func MatchMeters(text string) (int, bool) {
	if !reMeters.MatchString(text) {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MatchStrokeRate parses text as a strokes-per-minute reading. The
// digit grammar alone is not enough: a syntactically valid value
// outside [10,60] is impossible on this instrument and is rejected
// the same as a non-match.
func MatchStrokeRate(text string) (int, bool) {
	if !reRate.MatchString(text) {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < MinStrokeRate || n > MaxStrokeRate {
		return 0, false
	}
	return n, true
}

// MatchHeartRate parses text as a heart-rate reading in [40,220].
func MatchHeartRate(text string) (int, bool) {
	if !reHeartRate.MatchString(text) {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < MinHeartRate || n > MaxHeartRate {
		return 0, false
	}
	return n, true
}

// MatchDescriptor reports whether text is a workout descriptor in
// either the interval grammar ("3x4:00/3:00r") or the single-piece
// grammar ("2000m", "20:00").
func MatchDescriptor(text string) bool {
	return reInterval.MatchString(text) ||
		reSingleDistance.MatchString(text) ||
		reSingleTime.MatchString(text)
}

// IntervalDescriptor is the decomposition of an interval workout
// descriptor into its grammar components.
type IntervalDescriptor struct {
	Reps     int
	WorkTime string
	RestTime string
}

// DecomposeInterval extracts reps, work and rest from a descriptor
// already matching the interval grammar. Returns false for anything
// else, including single-piece descriptors.
func DecomposeInterval(text string) (IntervalDescriptor, bool) {
	m := reInterval.FindStringSubmatch(text)
	if m == nil {
		return IntervalDescriptor{}, false
	}
	reps, err := strconv.Atoi(m[1])
	if err != nil {
		return IntervalDescriptor{}, false
	}
	return IntervalDescriptor{
		Reps:     reps,
		WorkTime: strings.TrimSuffix(strings.TrimSuffix(m[2], "r"), "m"),
		RestTime: strings.TrimSuffix(m[3], "r"),
	}, true
}

// IsIntervalDescriptor reports whether descriptor text describes an
// interval workout: it contains the work/rest separator or carries the
// rest-marker suffix.
func IsIntervalDescriptor(text string) bool {
	return strings.ContainsRune(text, '/') || strings.HasSuffix(text, "r")
}

// ParseSeconds converts a validated time or split string ("M:SS",
// "M:SS.s" or "H:MM:SS.s") into seconds. It is a convenience for
// callers needing numeric durations; the pipeline itself keeps times
// in their validated textual form.
func ParseSeconds(text string) (float64, bool) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0.0
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, false
		}
		total = total*60 + v
	}
	return total, true
}
