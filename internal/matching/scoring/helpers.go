package scoring

import (
	"math"
	"strings"
)

// clampScore rounds and bounds a raw score into the 0-100 range.
func clampScore(value float64) int {
	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// equalFold trims and compares two strings case-insensitively.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// containsFold reports whether list contains value, case-insensitively.
func containsFold(list []string, value string) bool {
	for _, item := range list {
		if equalFold(item, value) {
			return true
		}
	}
	return false
}

// intersectFold returns the values of a that also appear in b,
// case-insensitively, preserving a's order and casing.
func intersectFold(a, b []string) []string {
	out := make([]string, 0, len(a))
	for _, item := range a {
		if containsFold(b, item) {
			out = append(out, item)
		}
	}
	return out
}
