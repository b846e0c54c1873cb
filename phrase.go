package calculator

import (
	"regexp"
	"strings"
)

// The normalizer is a fixed pipeline of rewrite passes. Order matters: power
// phrases go first because later passes strip "of", and within the power
// pattern the longest phrase must be tried first so that "to the power of"
// never half-matches on "power". All matching is on word boundaries, so a
// variable named "powerhouse" survives untouched.
var (
	powerPhrase     = regexp.MustCompile(`\bto the power of\b|\bto the power\b|\bpower of\b|\bpower\b`)
	sqrtPhrase      = regexp.MustCompile(`\bsquare root of (\d+(?:\.\d+)?)\b`)
	factorialPhrase = regexp.MustCompile(`\bfactorial of (\d+)\b`)
	dividedPhrase   = regexp.MustCompile(`\bdivided by\b`)
	timesPhrase     = regexp.MustCompile(`\bmultiplied by\b|\btimes\b`)
	fillerWord      = regexp.MustCompile(`\bthe\b|\bof\b`)
	spaceRun        = regexp.MustCompile(`\s+`)
)

// Normalize rewrites informal phrasing into canonical expression notation:
//
//	2 to the power of 5  ->  2 ^ 5
//	square root of 16    ->  sqrt(16)
//	factorial of 5       ->  factorial(5)
//	10 divided by 2      ->  10 / 2
//	6 multiplied by 7    ->  6 * 7
//	3 times 4            ->  3 * 4
//
// Input is lower-cased and filler words "the" and "of" are dropped. The
// result is best effort and is not guaranteed to be a valid expression;
// validity is the evaluator's concern. Normalize is pure and idempotent on
// its own output.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = powerPhrase.ReplaceAllString(s, " ^ ")
	s = sqrtPhrase.ReplaceAllString(s, "sqrt($1)")
	s = factorialPhrase.ReplaceAllString(s, "factorial($1)")
	s = dividedPhrase.ReplaceAllString(s, " / ")
	s = timesPhrase.ReplaceAllString(s, " * ")
	s = fillerWord.ReplaceAllString(s, " ")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
