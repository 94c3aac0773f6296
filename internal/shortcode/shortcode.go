// Package shortcode generates and validates the short codes that identify
// stored URL mappings.
package shortcode

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the character set short codes are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength is the standard short code length.
const DefaultLength = 6

// Generate returns a random code of the given length, each position drawn
// uniformly and independently from Alphabet. The underlying generator reads
// crypto/rand and is safe for concurrent use. Uniqueness is not guaranteed
// here; collisions are handled by the caller against the store.
func Generate(length int) (string, error) {
	const op = "shortcode.Generate"

	code, err := gonanoid.Generate(Alphabet, length)
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate short code: %w", op, err)
	}

	return code, nil
}

// Valid reports whether code has exactly the given length and contains only
// characters from Alphabet.
func Valid(code string, length int) bool {
	if len(code) != length {
		return false
	}

	for _, c := range code {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}

	return true
}
