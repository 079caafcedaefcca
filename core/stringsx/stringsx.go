// Package stringsx contains string helpers shared by configuration and routing.
package stringsx

import "strings"

// OneOf checks if a given string s is present within ss.
func OneOf(s string, ss ...string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}

	return false
}

// TrimFirstPrefix removes the first non-empty prefix of s found in prefixes.
// It reports whether a prefix was removed. A prefix equal to the whole string
// is not removed, so the result is never empty unless s is.
func TrimFirstPrefix(s string, prefixes ...string) (string, bool) {
	for _, prefix := range prefixes {
		if prefix == "" || len(prefix) == len(s) {
			continue
		}
		if strings.HasPrefix(s, prefix) {
			return s[len(prefix):], true
		}
	}

	return s, false
}
