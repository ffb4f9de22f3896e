package util

import (
	"golang.org/x/exp/slices"
)

// SortedStrings sorts s in place and returns it.
func SortedStrings(s []string) []string {
	slices.Sort(s)
	return s
}

// IsLowerAlphanumeric reports whether s is non-empty and consists only of
// ASCII lowercase letters and digits. Aliases and argument names must pass
// this check so that case-folded lookups never miss.
func IsLowerAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
