package storage

import "errors"

var (
	// ErrShortCodeExists is returned when an attempt is made to save
	// a mapping under a short code that is already taken.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrMappingNotFound is returned when an attempt is made to access
	// a mapping using a short code that doesn't exist.
	ErrMappingNotFound = errors.New("mapping not found")
)
