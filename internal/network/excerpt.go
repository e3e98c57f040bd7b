package network

import "strings"

const (
	MaxReasonLength = 140
	ellipsis        = "…"
)

// Excerpt collapses whitespace runs and truncates to max runes with an ellipsis marker.
func Excerpt(s string, max int) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	runes := []rune(collapsed)
	if max <= 0 || len(runes) <= max {
		return collapsed
	}
	return string(runes[:max]) + ellipsis
}
