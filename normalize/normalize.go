package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxRestMinutes is the largest whole-minute rest duration the
// instrument can be programmed with (its rest setting tops out at
// 9:55). Descriptor repair uses it to tell a genuine two-digit rest
// minute from a misread separator. Revisit if targeting a device with
// different limits.
const MaxRestMinutes = 9

// maxRepairPasses bounds the context-gated substitution fixpoint loop.
const maxRepairPasses = 8

// confusables maps visually-confusable non-Latin letters to the Latin
// characters they are misread from. These characters never appear
// legitimately in the instrument's fixed vocabulary, so the fold is
// unconditional.
var confusables = map[rune]rune{
	'а': 'a', 'е': 'e', 'о': 'o', 'с': 'c', 'р': 'p',
	'х': 'x', 'у': 'y', 'к': 'k', 'г': 'r', 'м': 'm',
	'т': 't', 'і': 'i', 'ѕ': 's',
	'А': 'A', 'Е': 'E', 'О': 'O', 'С': 'C', 'Р': 'P',
	'Х': 'X', 'У': 'Y', 'К': 'K', 'М': 'M', 'Т': 'T',
	'Н': 'H', 'В': 'B', 'І': 'I',
}

// Normalize repairs common OCR character confusions in a single text
// token. It is a pure function and is idempotent: repairs never
// re-trigger on already-repaired text.
//
// Repairs, in order:
//  1. ";" becomes ":" unconditionally (colon misread).
//  2. Confusable non-Latin look-alike letters fold to Latin.
//  3. Context-gated substitutions, run to a fixpoint so repairs that
//     create digit context enable their neighbors:
//     "," -> "." next to a digit, ":" or "."
//     "O" -> "0" next to a digit, ":" or "."
//     "l"/"I" -> "1" next to a digit
//     "S" -> "5" and "B" -> "8" only between two digits
func Normalize(text string) string {
	if text == "" {
		return text
	}

	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, ";", ":")
	text = foldConfusables(text)

	for i := 0; i < maxRepairPasses; i++ {
		repaired := repairPass(text)
		if repaired == text {
			break
		}
		text = repaired
	}

	return text
}

// foldConfusables applies the unconditional non-Latin fold
func foldConfusables(text string) string {
	return strings.Map(func(r rune) rune {
		if latin, ok := confusables[r]; ok {
			return latin
		}
		return r
	}, text)
}

// repairPass applies one round of context-gated substitutions. Gating
// looks at the neighbors in the input snapshot; cascading repairs are
// picked up by the caller's fixpoint loop.
func repairPass(text string) string {
	runes := []rune(text)
	out := make([]rune, len(runes))
	copy(out, runes)

	for i, r := range runes {
		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i < len(runes)-1 {
			next = runes[i+1]
		}

		switch r {
		case ',':
			if isNumericContext(prev) || isNumericContext(next) {
				out[i] = '.'
			}
		case 'O':
			if isNumericContext(prev) || isNumericContext(next) {
				out[i] = '0'
			}
		case 'l', 'I':
			if unicode.IsDigit(prev) || unicode.IsDigit(next) {
				out[i] = '1'
			}
		case 'S':
			// stricter gate: S appears in real words
			if unicode.IsDigit(prev) && unicode.IsDigit(next) {
				out[i] = '5'
			}
		case 'B':
			if unicode.IsDigit(prev) && unicode.IsDigit(next) {
				out[i] = '8'
			}
		}
	}

	return string(out)
}

// isNumericContext reports whether r is a digit, ':' or '.'
func isNumericContext(r rune) bool {
	return unicode.IsDigit(r) || r == ':' || r == '.'
}

var (
	// time token directly followed by more digits after the reps marker
	reMissingSeparator = regexp.MustCompile(`^(\d{1,2}:\d{2})(\d)`)

	// two-digit rest minutes after the separator
	reRestMinutes = regexp.MustCompile(`^(\d{1,3}):\d{2}`)
)

// leadingThreeConfusions are letters the display's "3" is misread as
// when it opens the descriptor ("3x...").
const leadingThreeConfusions = "зЗEeB"

// NormalizeDescriptor is the stricter repair applied to strings
// suspected of being the workout descriptor field ("NxWORK/RESTr").
// The descriptor's rigid grammar tolerates context-free repairs that
// would corrupt free-floating tokens:
//
//   - every "," is a misread separator and becomes "/"
//   - base Normalize repairs
//   - a leading letter misread from "3" directly before "x" becomes "3"
//   - a missing separator after the work time is reinserted
//   - a separator misread as a leading "1" on the rest time is dropped
//     when the implied rest minutes exceed the instrument's ceiling
func NormalizeDescriptor(text string) string {
	// Commas go first: the base pass would turn digit-adjacent commas
	// into periods, hiding them from the separator repair.
	text = strings.ReplaceAll(text, ",", "/")
	text = Normalize(text)
	text = repairLeadingReps(text)
	text = insertMissingSeparator(text)
	text = stripMisreadSeparator(text)
	return text
}

// repairLeadingReps fixes the single hard-coded confusion of a leading
// "3" read as a letter, e.g. "Ex4:00/3:00r" -> "3x4:00/3:00r".
func repairLeadingReps(text string) string {
	runes := []rune(text)
	if len(runes) < 2 || runes[1] != 'x' {
		return text
	}
	if strings.ContainsRune(leadingThreeConfusions, runes[0]) {
		runes[0] = '3'
		return string(runes)
	}
	return text
}

// insertMissingSeparator reinserts a dropped "/" after the first
// complete time token following the reps marker:
// "3x4:0013:00r" -> "3x4:00/13:00r".
func insertMissingSeparator(text string) string {
	x := strings.IndexRune(text, 'x')
	if x < 0 || x+1 >= len(text) {
		return text
	}
	rest := text[x+1:]
	m := reMissingSeparator.FindStringSubmatch(rest)
	if m == nil {
		return text
	}
	work := m[1]
	return text[:x+1] + work + "/" + rest[len(work):]
}

// stripMisreadSeparator drops a leading "1" on the rest time when the
// remaining minutes exceed MaxRestMinutes, which means the "1" was the
// separator itself: "2x20:00/11:15r" -> "2x20:00/1:15r".
func stripMisreadSeparator(text string) string {
	slash := strings.IndexRune(text, '/')
	if slash < 0 || slash+1 >= len(text) {
		return text
	}
	rest := text[slash+1:]
	if rest[0] != '1' {
		return text
	}
	m := reRestMinutes.FindStringSubmatch(rest)
	if m == nil {
		return text
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil || minutes <= MaxRestMinutes {
		return text
	}
	return text[:slash+1] + rest[1:]
}
