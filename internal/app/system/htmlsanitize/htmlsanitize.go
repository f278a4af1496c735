// Package htmlsanitize strips dangerous HTML from user-supplied content.
//
// Post bodies and comment text come straight from clients and are served
// back to other users, so they are sanitized once on the write path.
// Basic formatting tags survive; scripts, event handlers, and javascript:
// URLs do not.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns the input with unsafe HTML removed. Plain text passes
// through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
