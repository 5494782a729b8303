package identity

import "strings"

// Normalize maps a raw submitted name to its canonical key. Two names that
// differ only in surrounding whitespace or letter case resolve to the same key.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
