package utils

import (
	"strings"
	"unicode"
)

// SequenceRatio returns a similarity ratio between two strings in [0, 1],
// computed as 2*LCS(a,b)/(len(a)+len(b)). Comparison is case-insensitive.
// Identical strings score 1.0; strings with no common characters score 0.
func SequenceRatio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		if len(a) == 0 {
			return 0
		}
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	lcs := longestCommonSubsequence(a, b)
	return 2.0 * float64(lcs) / float64(len(a)+len(b))
}

// longestCommonSubsequence computes LCS length with a rolling single-row DP.
func longestCommonSubsequence(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// TitleCase capitalizes the first letter of each word, lowercasing the rest.
// Used to canonicalize extracted city names for display.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	newWord := true
	for _, r := range strings.ToLower(s) {
		if newWord && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			newWord = false
		} else {
			b.WriteRune(r)
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				newWord = true
			}
		}
	}
	return b.String()
}

// Tokenize splits a query into lower-cased word tokens, treating any
// non-alphanumeric rune as a separator.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
