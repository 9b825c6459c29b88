package utils

import (
	"strings"
	"unicode"
)

// NormalizeQuery trims the surrounding whitespace the launcher keyword
// prefix leaves behind.
func NormalizeQuery(q string) string {
	return strings.TrimSpace(q)
}

// IsValidQuery checks if a query should be processed at all. Control
// characters and embedded whitespace never appear in module names, so such
// queries are rejected before they reach the engines.
func IsValidQuery(q string) bool {
	if len(q) == 0 {
		return false
	}
	for _, r := range q {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// HasWildcard reports whether a query selects the full-name search mode.
func HasWildcard(q string) bool {
	return strings.Contains(q, "*")
}
