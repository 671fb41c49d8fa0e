// Package keywords filters keyword-bearing entities against free text.
package keywords

import "strings"

// Bearer is anything that carries an ordered list of trigger keywords.
type Bearer interface {
	KeywordList() []string
}

// Match returns, in input order, the candidates with at least one keyword
// that occurs in text, ignoring case. Blank keywords never match.
func Match[T Bearer](text string, candidates []T) []T {
	matched := make([]T, 0)
	if strings.TrimSpace(text) == "" {
		return matched
	}

	haystack := strings.ToLower(text)
	for _, candidate := range candidates {
		if Contains(haystack, candidate.KeywordList()) {
			matched = append(matched, candidate)
		}
	}
	return matched
}

// Contains reports whether any keyword occurs in lowered, which must already
// be lower case.
func Contains(lowered string, keywordList []string) bool {
	for _, keyword := range keywordList {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
