package classify

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/ergscan/layout"
	"github.com/tsawler/ergscan/match"
	"github.com/tsawler/ergscan/model"
	"github.com/tsawler/ergscan/normalize"
)

// RowRole is the role a display row plays in the workout summary.
type RowRole int

const (
	RoleUnknown RowRole = iota
	RoleWorkoutType
	RoleDate
	RoleHeader // the column-label row
	RoleDataRow
)

// String returns a string representation of the role
func (r RowRole) String() string {
	switch r {
	case RoleWorkoutType:
		return "workoutType"
	case RoleDate:
		return "date"
	case RoleHeader:
		return "header"
	case RoleDataRow:
		return "dataRow"
	default:
		return "unknown"
	}
}

// Classification is the outcome of classifying one display row.
type Classification struct {
	Role RowRole

	// WorkoutType is the repaired descriptor text (RoleWorkoutType)
	WorkoutType string

	// RawText is the row's joined text before descriptor repair
	RawText string

	// Date is the parsed workout date (RoleDate)
	Date time.Time

	// Row holds the slotted cells (RoleDataRow)
	Row *model.TableRow
}

// restMeters matches the "r" + digits marker the display prints for
// meters rowed during rest.
var restMeters = regexp.MustCompile(`^r\d+$`)

// junkLabels are tokens that carry no field data: unit suffixes and
// generic words that show up inside data rows.
var junkLabels = map[string]bool{
	"total":  true,
	"rest":   true,
	"avg":    true,
	"time":   true,
	"meter":  true,
	"meters": true,
	"split":  true,
	"s/m":    true,
	"/500m":  true,
	"view":   true,
	"detail": true,
}

// token is one normalized detection within a row.
type token struct {
	text       string
	confidence float64
}

// Classifier assigns display rows their roles.
type Classifier struct{}

// NewClassifier creates a classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify determines a row's role. Metadata grammars (workout
// descriptor, date) are tried before data-row detection: a metadata
// row misread as data corrupts the whole table, while the reverse
// only loses one row.
func (c *Classifier) Classify(row *layout.Row) Classification {
	if row == nil || row.IsEmpty() {
		return Classification{Role: RoleUnknown}
	}

	joined := normalize.Normalize(row.Text())

	descriptor := normalize.NormalizeDescriptor(strings.ReplaceAll(joined, " ", ""))
	if match.MatchDescriptor(descriptor) {
		return Classification{
			Role:        RoleWorkoutType,
			WorkoutType: descriptor,
			RawText:     row.Text(),
		}
	}

	if date, ok := match.MatchDate(joined); ok {
		return Classification{Role: RoleDate, Date: date, RawText: row.Text()}
	}

	if c.isHeaderRow(row) {
		return Classification{Role: RoleHeader, RawText: row.Text()}
	}

	tokens := c.dataTokens(row)
	if cells := c.slotCells(tokens, row.BBox); cells.CoreFieldCount() > 0 {
		return Classification{Role: RoleDataRow, Row: cells, RawText: row.Text()}
	}

	return Classification{Role: RoleUnknown, RawText: row.Text()}
}

// columnLandmarks are the landmarks that make up the column-label row.
var columnLandmarks = map[match.Landmark]bool{
	match.LandmarkTime:        true,
	match.LandmarkMeters:      true,
	match.LandmarkSplitHeader: true,
	match.LandmarkStrokeRate:  true,
}

// isHeaderRow reports whether the row is the column-label row: at
// least two of its detections fuzzy-match column landmarks.
func (c *Classifier) isHeaderRow(row *layout.Row) bool {
	found := 0
	for _, det := range row.Detections {
		for _, piece := range strings.Fields(det.Text) {
			if lm, ok := match.MatchLandmark(normalize.Normalize(piece)); ok && columnLandmarks[lm] {
				found++
			}
		}
	}
	return found >= 2
}

// dataTokens normalizes a row's detections into candidate field
// tokens. Junk is dropped first; tokens that match nothing as a whole
// are split on whitespace when every piece matches a field grammar or
// landmark, so smooshed detections still yield their fields.
func (c *Classifier) dataTokens(row *layout.Row) []token {
	var tokens []token
	for _, det := range row.Detections {
		text := normalize.Normalize(strings.TrimSpace(det.Text))
		if isJunk(text) {
			continue
		}
		if matchesAnyField(text) {
			tokens = append(tokens, token{text: text, confidence: det.Confidence})
			continue
		}
		if pieces, ok := splitSmooshed(text); ok {
			for _, piece := range pieces {
				if !isJunk(piece) {
					tokens = append(tokens, token{text: piece, confidence: det.Confidence})
				}
			}
			continue
		}
		// opaque token; the slotter may still decompose it
		tokens = append(tokens, token{text: text, confidence: det.Confidence})
	}
	return tokens
}

// isJunk reports whether a token carries no field data: single
// characters, fixed junk labels, and the rest-meters marker.
func isJunk(text string) bool {
	if len([]rune(text)) <= 1 {
		return true
	}
	if junkLabels[strings.ToLower(text)] {
		return true
	}
	return restMeters.MatchString(strings.ToLower(text))
}

// matchesAnyField reports whether text matches a field grammar whole.
func matchesAnyField(text string) bool {
	if match.MatchTime(text) || match.MatchSplit(text) {
		return true
	}
	if _, ok := match.MatchMeters(text); ok {
		return true
	}
	if _, ok := match.MatchHeartRate(text); ok {
		return true
	}
	return false
}

// splitSmooshed splits a whitespace-joined token into pieces, valid
// only when every piece independently matches a field grammar or a
// landmark.
func splitSmooshed(text string) ([]string, bool) {
	pieces := strings.Fields(text)
	if len(pieces) < 2 {
		return nil, false
	}
	for _, piece := range pieces {
		if matchesAnyField(piece) {
			continue
		}
		if _, ok := match.MatchLandmark(piece); ok {
			continue
		}
		if _, ok := match.DecomposeSplitRate(piece); ok {
			continue
		}
		return nil, false
	}
	return pieces, true
}

// slotCells assigns tokens to the row's semantic columns. Tokens
// arrive in left-to-right display order, which mirrors the column
// order (time, meters, split, stroke rate, heart rate), so each token
// fills the first still-empty column whose grammar it satisfies.
func (c *Classifier) slotCells(tokens []token, bbox model.BBox) *model.TableRow {
	row := &model.TableRow{BBox: bbox}

	for _, tok := range tokens {
		switch {
		case row.Time == nil && match.MatchTime(tok.text):
			row.Time = model.NewCell(tok.text, tok.confidence)
		case row.Split == nil && match.MatchSplit(tok.text):
			row.Split = model.NewCell(tok.text, tok.confidence)
		case row.Meters == nil && isMetersToken(tok.text):
			row.Meters = model.NewCell(tok.text, tok.confidence)
		case row.StrokeRate == nil && isRateToken(tok.text):
			row.StrokeRate = model.NewCell(tok.text, tok.confidence)
		case row.HeartRate == nil && isHeartRateToken(tok.text):
			row.HeartRate = model.NewCell(tok.text, tok.confidence)
		default:
			if row.Split == nil && row.StrokeRate == nil {
				if sr, ok := match.DecomposeSplitRate(tok.text); ok {
					row.Split = model.NewCell(sr.Split, tok.confidence)
					row.StrokeRate = model.NewCell(strconv.Itoa(sr.Rate), tok.confidence)
				}
			}
		}
	}

	return row
}

// isMetersToken reports whether text should fill the meters column.
func isMetersToken(text string) bool {
	_, ok := match.MatchMeters(text)
	return ok
}

// isRateToken reports whether text is a plausible stroke rate.
func isRateToken(text string) bool {
	_, ok := match.MatchStrokeRate(text)
	return ok
}

// isHeartRateToken reports whether text is a plausible heart rate.
func isHeartRateToken(text string) bool {
	_, ok := match.MatchHeartRate(text)
	return ok
}
