// Package normalize provides canonicalization helpers for user-supplied
// identity fields. Emails are compared and indexed case-insensitively, so
// every path that stores or filters on an email must normalize it first.
package normalize

import "strings"

// Email lowercases and trims an email address. Empty or whitespace-only
// input normalizes to "".
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// VoteType canonicalizes a vote type string for comparison against the
// allowed set ("up", "down").
func VoteType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
