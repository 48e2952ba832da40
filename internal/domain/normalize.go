package domain

import (
	"regexp"
	"strings"
)

var (
	// countySuffixRe strips a trailing " county" and anything after it,
	// so "Lee County, FL" keys the same as "lee".
	countySuffixRe = regexp.MustCompile(`\s+county\b.*$`)

	// saintRe collapses the word "saint" to the common "st" abbreviation.
	saintRe = regexp.MustCompile(`\bsaint\b`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeCounty derives the comparison key for a county name.
// Empty input yields an empty key; the function never fails.
func NormalizeCounty(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = countySuffixRe.ReplaceAllString(s, "")
	return normalize(s)
}

// NormalizeCity derives the comparison key for a city or municipality name.
// Empty input yields an empty key; the function never fails.
func NormalizeCity(raw string) string {
	return normalize(raw)
}

// normalize applies the folding shared by county and city keys: lowercase,
// trim, strip periods, abbreviate "saint", collapse internal whitespace.
// ASCII case folding only; no locale dependency.
func normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ".", "")
	s = saintRe.ReplaceAllString(s, "st")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
