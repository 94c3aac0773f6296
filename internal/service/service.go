package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"url-shortener/internal/metrics"
	"url-shortener/internal/models"
	"url-shortener/internal/shortcode"
	"url-shortener/internal/storage"
	"url-shortener/pkg/urlx"
)

var (
	// ErrEmptyURL is returned when the submitted URL is empty or whitespace-only.
	ErrEmptyURL = errors.New("url is empty")
	// ErrInvalidURL is returned when the submitted URL fails validation after normalization.
	ErrInvalidURL = errors.New("invalid url format")
	// ErrMaxRetriesExceeded is returned when the maximum number of retries for generating a short code is exceeded.
	ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating short code")
)

// MappingRepository defines the interface for working with URL mappings at the business logic layer.
type MappingRepository interface {
	// Save inserts a new mapping with a zero click count.
	// Returns storage.ErrShortCodeExists if the short code is already taken.
	Save(ctx context.Context, shortCode, originalURL string) (*models.Mapping, error)

	// GetByShortCode retrieves a mapping by its short code.
	// Returns storage.ErrMappingNotFound if no such mapping exists.
	GetByShortCode(ctx context.Context, shortCode string) (*models.Mapping, error)

	// IncrementClicks atomically adds 1 to the click count of the mapping.
	// Returns storage.ErrMappingNotFound if no such mapping exists.
	IncrementClicks(ctx context.Context, shortCode string) error

	// Stats retrieves a snapshot of the mapping without changing it.
	// Returns storage.ErrMappingNotFound if no such mapping exists.
	Stats(ctx context.Context, shortCode string) (*models.Mapping, error)
}

// URLService provides the shorten, resolve and stats operations on top of
// a mapping repository.
type URLService struct {
	repo            MappingRepository
	shortCodeLength int
}

// NewURLService creates a new URLService with the provided repository and short code length.
func NewURLService(repo MappingRepository, shortCodeLength int) *URLService {
	return &URLService{
		repo:            repo,
		shortCodeLength: shortCodeLength,
	}
}

// Shorten validates and normalizes rawURL, generates a short code for it and
// stores the mapping. Code generation is retried a bounded number of times
// when the drawn code is already taken, so an existing mapping is never
// overwritten. Validation failures are reported as ErrEmptyURL or
// ErrInvalidURL before any store mutation.
func (s *URLService) Shorten(ctx context.Context, rawURL string) (*models.Mapping, error) {
	const op = "service.URLService.Shorten"
	const maxRetries = 5

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyURL)
	}

	normalized := urlx.Normalize(rawURL)
	if !urlx.IsValid(normalized) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidURL)
	}

	for i := 0; i < maxRetries; i++ {
		code, err := shortcode.Generate(s.shortCodeLength)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short code: %w", op, err)
		}

		m, err := s.repo.Save(ctx, code, normalized)
		if err != nil {
			if errors.Is(err, storage.ErrShortCodeExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		metrics.RecordURLShortened()
		return m, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// Resolve retrieves the mapping for the provided short code and records a
// click against it. The increment is best-effort: its outcome never blocks
// the redirect, so a found mapping is always returned.
func (s *URLService) Resolve(ctx context.Context, shortCode string) (*models.Mapping, error) {
	const op = "service.URLService.Resolve"

	m, err := s.repo.GetByShortCode(ctx, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	if err := s.repo.IncrementClicks(ctx, shortCode); err == nil {
		metrics.RecordClick()
	}

	metrics.RecordRedirect()
	return m, nil
}

// Stats retrieves a point-in-time snapshot of the mapping for the provided short code.
func (s *URLService) Stats(ctx context.Context, shortCode string) (*models.Mapping, error) {
	const op = "service.URLService.Stats"

	m, err := s.repo.Stats(ctx, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get url stats: %w", op, err)
	}

	return m, nil
}
