package models

import "time"

// Mapping represents a shortened URL and its associated metadata.
type Mapping struct {
	// ShortCode is the short code or key associated with the original URL.
	ShortCode string
	// OriginalURL is the original, full-length URL that the short code points to.
	OriginalURL string
	// Clicks tracks the number of times the shortened URL has been followed.
	Clicks int64
	// CreatedAt is the timestamp indicating when the mapping was created, in UTC.
	CreatedAt time.Time
}
