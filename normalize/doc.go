// Package normalize repairs systematic OCR character confusions in
// text read off the instrument's display.
//
// Two layers exist. Normalize is the general repair applied before
// every pattern check: safe, context-gated substitutions that only
// fire next to numeric characters, plus an unconditional fold of
// non-Latin look-alike letters. NormalizeDescriptor is the stricter
// transform for the workout-descriptor field, whose rigid
// "NxWORK/RESTr" grammar tolerates aggressive context-free separator
// repairs.
package normalize
