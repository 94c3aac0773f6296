package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"url-shortener/internal/models"
)

// MappingStore is the authoritative in-memory set of URL mappings.
// A single mutex serializes access to the underlying map, which keeps
// every single-key operation atomic; lock hold time is O(1) map access.
// All methods return copies of the stored record, so callers can never
// mutate store state behind the lock's back.
type MappingStore struct {
	mu       sync.RWMutex
	mappings map[string]*models.Mapping
}

// NewMappingStore creates an empty mapping store.
func NewMappingStore() *MappingStore {
	return &MappingStore{
		mappings: make(map[string]*models.Mapping),
	}
}

// Save inserts a new mapping under shortCode with a zero click count and
// returns a snapshot of it. If the short code is already taken it returns
// ErrShortCodeExists and leaves the existing mapping untouched; the caller
// is expected to retry with a fresh code.
func (s *MappingStore) Save(ctx context.Context, shortCode, originalURL string) (*models.Mapping, error) {
	const op = "storage.MappingStore.Save"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mappings[shortCode]; ok {
		return nil, fmt.Errorf("%s: %w", op, ErrShortCodeExists)
	}

	m := &models.Mapping{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		CreatedAt:   time.Now().UTC(),
	}
	s.mappings[shortCode] = m

	snapshot := *m
	return &snapshot, nil
}

// GetByShortCode returns a snapshot of the mapping for shortCode,
// or ErrMappingNotFound if no such mapping exists.
func (s *MappingStore) GetByShortCode(ctx context.Context, shortCode string) (*models.Mapping, error) {
	const op = "storage.MappingStore.GetByShortCode"

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.mappings[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrMappingNotFound)
	}

	snapshot := *m
	return &snapshot, nil
}

// IncrementClicks atomically adds 1 to the click count of the mapping for
// shortCode. Returns ErrMappingNotFound if the code is unknown. Concurrent
// increments on the same code never lose updates.
func (s *MappingStore) IncrementClicks(ctx context.Context, shortCode string) error {
	const op = "storage.MappingStore.IncrementClicks"

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.mappings[shortCode]
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrMappingNotFound)
	}
	m.Clicks++

	return nil
}

// Stats returns a snapshot of the mapping's fields as of the call,
// or ErrMappingNotFound if no such mapping exists.
func (s *MappingStore) Stats(ctx context.Context, shortCode string) (*models.Mapping, error) {
	const op = "storage.MappingStore.Stats"

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.mappings[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrMappingNotFound)
	}

	snapshot := *m
	return &snapshot, nil
}

// Len reports the number of stored mappings.
func (s *MappingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mappings)
}
