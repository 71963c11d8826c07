package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/logger"
)

// Store is the single source of truth for links, categories and
// settings. Every successful mutation writes the affected collection
// through the BlobStore before the call returns; a failed write rolls
// the in-memory state back to the last durable value and surfaces as a
// storage error.
//
// Mutations are serialized by the write lock, so no two mutations ever
// interleave and the in-memory snapshot never drifts from the durable
// copy while a write succeeds.
type Store struct {
	mu         sync.RWMutex
	links      []domain.Link
	categories []domain.Category
	settings   domain.Settings

	blobs  BlobStore
	logger logger.Logger
	newID  func() string
}

// NewStore creates an empty catalog store over the given substrate.
// Call Hydrate before serving reads.
func NewStore(blobs BlobStore, log logger.Logger) *Store {
	return &Store{
		blobs:  blobs,
		logger: log,
		newID:  uuid.NewString,
	}
}

// Seed is the initial catalog applied on first run, when the substrate
// holds no blob for a collection.
type Seed struct {
	Links      []domain.Link
	Categories []domain.Category
	Settings   domain.Settings
}

// Hydrate loads the three collections from the substrate. A collection
// whose blob is absent is initialized from the seed and written back,
// so the first run leaves a complete durable catalog behind.
func (s *Store) Hydrate(ctx context.Context, seed Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	links, ok, err := s.blobs.LoadLinks(ctx)
	if err != nil {
		return storageErr("load links", err)
	}
	if !ok {
		links = seed.Links
		if err := s.blobs.SaveLinks(ctx, links); err != nil {
			return storageErr("seed links", err)
		}
		s.logger.Info("seeded links", logger.Int("count", len(links)))
	}

	categories, ok, err := s.blobs.LoadCategories(ctx)
	if err != nil {
		return storageErr("load categories", err)
	}
	if !ok {
		categories = seed.Categories
		if err := s.blobs.SaveCategories(ctx, categories); err != nil {
			return storageErr("seed categories", err)
		}
		s.logger.Info("seeded categories", logger.Int("count", len(categories)))
	}

	settings, ok, err := s.blobs.LoadSettings(ctx)
	if err != nil {
		return storageErr("load settings", err)
	}
	if !ok {
		settings = seed.Settings
		if err := s.blobs.SaveSettings(ctx, settings); err != nil {
			return storageErr("seed settings", err)
		}
		s.logger.Info("seeded settings")
	}

	s.links = links
	s.categories = categories
	s.settings = settings.WithDefaults()
	return nil
}

// Snapshot returns a point-in-time copy of the three collections.
// Callers may hold it freely; it never aliases live state.
func (s *Store) Snapshot() (links []domain.Link, categories []domain.Category, settings domain.Settings) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLinks(s.links), cloneCategories(s.categories), s.settings
}

// Links returns a copy of the link sequence in insertion order.
func (s *Store) Links() []domain.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLinks(s.links)
}

// Categories returns a copy of the category sequence.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCategories(s.categories)
}

// Settings returns the current settings record.
func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Password returns the currently configured gate password.
func (s *Store) Password() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Password
}

// AddLink validates the draft, assigns a fresh ID and zero visits,
// normalizes the URL and appends the link to the end of the sequence.
func (s *Store) AddLink(ctx context.Context, draft domain.LinkDraft) (domain.Link, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return domain.Link{}, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
	}
	if strings.TrimSpace(draft.URL) == "" {
		return domain.Link{}, fmt.Errorf("%w: url must not be empty", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	link := domain.Link{
		ID:          s.newID(),
		Title:       draft.Title,
		URL:         domain.NormalizeURL(draft.URL),
		Category:    draft.Category,
		Icon:        draft.Icon,
		Description: draft.Description,
		Visits:      0,
	}

	next := append(cloneLinks(s.links), link)
	if err := s.blobs.SaveLinks(ctx, next); err != nil {
		return domain.Link{}, storageErr("persist links", err)
	}
	s.links = next
	return link, nil
}

// DeleteLink removes the link with the given ID. Deleting an unknown
// ID is a no-op, not an error.
func (s *Store) DeleteLink(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Link, 0, len(s.links))
	found := false
	for _, l := range s.links {
		if l.ID == id {
			found = true
			continue
		}
		next = append(next, l)
	}
	if !found {
		return nil
	}

	if err := s.blobs.SaveLinks(ctx, next); err != nil {
		return storageErr("persist links", err)
	}
	s.links = next
	return nil
}

// RecordVisit increments the visit counter of the link with the given
// ID. Unknown IDs are a no-op.
func (s *Store) RecordVisit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneLinks(s.links)
	found := false
	for i := range next {
		if next[i].ID == id {
			next[i].Visits++
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.blobs.SaveLinks(ctx, next); err != nil {
		return storageErr("persist links", err)
	}
	s.links = next
	return nil
}

// AddCategory appends a new category with a fresh ID. Empty or
// whitespace-only names are rejected.
func (s *Store) AddCategory(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, fmt.Errorf("%w: category name must not be empty", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cat := domain.Category{ID: s.newID(), Name: name}
	next := append(cloneCategories(s.categories), cat)
	if err := s.blobs.SaveCategories(ctx, next); err != nil {
		return domain.Category{}, storageErr("persist categories", err)
	}
	s.categories = next
	return cat, nil
}

// RenameCategory replaces the name of the category with the given ID.
// Links referencing the category are untouched: identifiers are
// stable, so renaming never affects link references.
func (s *Store) RenameCategory(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name must not be empty", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneCategories(s.categories)
	found := false
	for i := range next {
		if next[i].ID == id {
			next[i].Name = name
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, id)
	}

	if err := s.blobs.SaveCategories(ctx, next); err != nil {
		return storageErr("persist categories", err)
	}
	s.categories = next
	return nil
}

// DeleteCategory removes the category with the given ID. The deletion
// is rejected when it would leave the catalog without any category.
// Links referencing the removed category are deliberately left alone;
// their references dangle and the links surface only under "all".
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.categories) <= 1 {
		return domain.ErrLastCategory
	}

	next := make([]domain.Category, 0, len(s.categories))
	found := false
	for _, c := range s.categories {
		if c.ID == id {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, id)
	}

	if err := s.blobs.SaveCategories(ctx, next); err != nil {
		return storageErr("persist categories", err)
	}
	s.categories = next
	return nil
}

// SaveSettings replaces the settings record wholesale. The caller
// supplies the full desired record; no field-by-field merge happens
// here, which keeps partial-update bugs impossible.
func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	settings = settings.WithDefaults()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.blobs.SaveSettings(ctx, settings); err != nil {
		return storageErr("persist settings", err)
	}
	s.settings = settings
	return nil
}

// ReplaceAll atomically swaps the whole catalog. Used by the backup
// import path. A nil settings pointer leaves settings untouched.
// Either every collection is durably replaced or none is.
func (s *Store) ReplaceAll(ctx context.Context, links []domain.Link, categories []domain.Category, settings *domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevLinks := s.links
	prevCategories := s.categories

	if err := s.blobs.SaveLinks(ctx, links); err != nil {
		return storageErr("persist links", err)
	}
	if err := s.blobs.SaveCategories(ctx, categories); err != nil {
		// Restore the durable link blob so memory and substrate agree.
		if rerr := s.blobs.SaveLinks(ctx, prevLinks); rerr != nil {
			s.logger.Error("failed to restore links after partial import",
				logger.Error(rerr))
		}
		return storageErr("persist categories", err)
	}
	if settings != nil {
		next := settings.WithDefaults()
		if err := s.blobs.SaveSettings(ctx, next); err != nil {
			if rerr := s.blobs.SaveLinks(ctx, prevLinks); rerr != nil {
				s.logger.Error("failed to restore links after partial import",
					logger.Error(rerr))
			}
			if rerr := s.blobs.SaveCategories(ctx, prevCategories); rerr != nil {
				s.logger.Error("failed to restore categories after partial import",
					logger.Error(rerr))
			}
			return storageErr("persist settings", err)
		}
		s.settings = next
	}

	s.links = cloneLinks(links)
	s.categories = cloneCategories(categories)
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}

func cloneLinks(in []domain.Link) []domain.Link {
	out := make([]domain.Link, len(in))
	copy(out, in)
	return out
}

func cloneCategories(in []domain.Category) []domain.Category {
	out := make([]domain.Category, len(in))
	copy(out, in)
	return out
}
