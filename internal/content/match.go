package content

import "strings"

// matchAny reports whether q occurs inside any single field.
// Fields and q are expected to be case-folded already.
func matchAny(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(f, q) {
			return true
		}
	}
	return false
}
