// Package categorize implements the multi-signal transaction categorization
// engine: user rules, internal-transfer detection, keyword scoring with
// fuzzy matching, and amount-based business-logic overrides.
package categorize

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumericPattern  = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRunPattern    = regexp.MustCompile(`\s+`)
	corporateSuffixPattern  = regexp.MustCompile(`\b(ltd|limited|inc|corp|llc|co|plc)\b`)
	standaloneDigitsPattern = regexp.MustCompile(`\b\d+\b`)
)

// NormalizeMerchant reduces a merchant or description string to the join key
// used for learned rules: lowercased, stripped of punctuation, corporate
// suffixes and standalone store numbers, with whitespace collapsed.
// "STARBUCKS #4521" and "Starbucks 0117" both normalize to "starbucks".
func NormalizeMerchant(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumericPattern.ReplaceAllString(s, " ")
	s = corporateSuffixPattern.ReplaceAllString(s, " ")
	s = standaloneDigitsPattern.ReplaceAllString(s, " ")
	s = whitespaceRunPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// patternsOverlap reports whether two normalized merchant strings refer to
// the same merchant: either contains the other.
func patternsOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
