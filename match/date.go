package match

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Year plausibility window for the day/year digit split. Screens
// captured by this system do not predate the app; keeps a smeared
// digit block from being read as an absurd year.
const (
	minDateYear = 2020
	maxDateYear = 2030
)

var (
	reMonthColon   = regexp.MustCompile(`^([A-Za-z]{3}):`)
	reDigitPeriod  = regexp.MustCompile(`(\d)\.+(\d)`)
	reMultiSpace   = regexp.MustCompile(`\s{2,}`)
	reDayYearBlock = regexp.MustCompile(`\b(\d{5,7})\b`)
	reDate         = regexp.MustCompile(`^([A-Za-z]{3})\.?\s+(\d{1,2})\s+(\d{4})$`)
)

// MatchDate parses text as a workout date ("Sep 21 2025"). Several
// OCR artifacts specific to the date row are repaired before the
// grammar is applied:
//
//   - a trailing colon after the month abbreviation is dropped
//   - a period between digits becomes a space
//   - repeated whitespace collapses
//   - a concatenated day+year digit block is split by trying a 1-digit
//     day first, then a 2-digit day, requiring a plausible day (1-31)
//     and year
func MatchDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	text = reMonthColon.ReplaceAllString(text, "$1 ")
	text = reDigitPeriod.ReplaceAllString(text, "$1 $2")
	text = reMultiSpace.ReplaceAllString(text, " ")
	text = reDayYearBlock.ReplaceAllStringFunc(text, splitDayYear)
	text = reMultiSpace.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	m := reDate.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	month := strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
	parsed, err := time.Parse("Jan 2 2006", month+" "+m[2]+" "+m[3])
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// splitDayYear splits a smeared day+year digit block ("212025") into
// "21 2025". Day lengths are tried shortest first; the block is left
// alone when no split yields a plausible day and year.
func splitDayYear(block string) string {
	for dayLen := 1; dayLen <= 2; dayLen++ {
		if dayLen+4 != len(block) {
			continue
		}
		day, err := strconv.Atoi(block[:dayLen])
		if err != nil || day < 1 || day > 31 {
			continue
		}
		year, err := strconv.Atoi(block[dayLen:])
		if err != nil || year < minDateYear || year > maxDateYear {
			continue
		}
		return block[:dayLen] + " " + block[dayLen:]
	}
	return block
}
