package validator

import (
	"regexp"
	"strings"
)

const minEmailLength = 6

// Permissive on purpose: one or more non-space/non-@ runs around a single @ and a dot.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail is a UX gate for signup input, not an RFC 5322 check.
func IsValidEmail(raw string) bool {
	email := strings.TrimSpace(raw)
	if len(email) < minEmailLength {
		return false
	}
	if !strings.Contains(email, "@") {
		return false
	}
	return emailShape.MatchString(email)
}
