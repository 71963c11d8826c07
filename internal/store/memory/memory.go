// Package memory is an in-memory catalog substrate. It backs tests
// and ephemeral runs; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/mynav/mynav/internal/domain"
)

// Store holds the three catalog blobs in memory.
//
// SaveErr, when set, is returned by every save call. Tests use it to
// exercise the catalog's rollback path on storage failure.
type Store struct {
	mu sync.Mutex

	links         []domain.Link
	hasLinks      bool
	categories    []domain.Category
	hasCategories bool
	settings      domain.Settings
	hasSettings   bool

	SaveErr error
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) LoadLinks(ctx context.Context) ([]domain.Link, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasLinks {
		return nil, false, nil
	}
	out := make([]domain.Link, len(s.links))
	copy(out, s.links)
	return out, true, nil
}

func (s *Store) SaveLinks(ctx context.Context, links []domain.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.links = make([]domain.Link, len(links))
	copy(s.links, links)
	s.hasLinks = true
	return nil
}

func (s *Store) LoadCategories(ctx context.Context) ([]domain.Category, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCategories {
		return nil, false, nil
	}
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out, true, nil
}

func (s *Store) SaveCategories(ctx context.Context, categories []domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.categories = make([]domain.Category, len(categories))
	copy(s.categories, categories)
	s.hasCategories = true
	return nil
}

func (s *Store) LoadSettings(ctx context.Context) (domain.Settings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSettings {
		return domain.Settings{}, false, nil
	}
	return s.settings, true, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.settings = settings
	s.hasSettings = true
	return nil
}
