package match

import "strings"

// SplitRate is a split pace and stroke rate recovered from a single
// smeared token.
type SplitRate struct {
	Split string
	Rate  int
}

// DecomposeSplitRate handles a single token that actually encodes both
// a split pace and a stroke rate. Two forms occur: "pace rate" with an
// internal space where both halves validate on their own, and a fully
// concatenated form where the last two characters are the rate and the
// remainder is the pace ("1:55.024").
func DecomposeSplitRate(text string) (SplitRate, bool) {
	text = strings.TrimSpace(text)

	if before, after, found := strings.Cut(text, " "); found {
		rate, ok := MatchStrokeRate(strings.TrimSpace(after))
		if ok && MatchSplit(strings.TrimSpace(before)) {
			return SplitRate{Split: strings.TrimSpace(before), Rate: rate}, true
		}
		return SplitRate{}, false
	}

	if len(text) < 3 {
		return SplitRate{}, false
	}
	pace, tail := text[:len(text)-2], text[len(text)-2:]
	rate, ok := MatchStrokeRate(tail)
	if ok && MatchSplit(pace) {
		return SplitRate{Split: pace, Rate: rate}, true
	}
	return SplitRate{}, false
}
