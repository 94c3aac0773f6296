// Package urlx provides pure helpers for validating and normalizing
// user-supplied URLs.
package urlx

import (
	"net/url"
	"strings"
)

// Normalize ensures the URL carries an explicit scheme. Input that doesn't
// start with "http://" or "https://" is prefixed with "https://"; anything
// else is returned unchanged. Idempotent.
func Normalize(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// IsValid reports whether rawURL parses into a well-formed absolute URL:
// non-empty scheme, non-empty host containing at least one dot and longer
// than 3 characters. The check is deliberately syntactic; no DNS resolution
// or scheme allow-listing happens here.
func IsValid(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != "" && strings.Contains(u.Host, ".") && len(u.Host) > 3
}
