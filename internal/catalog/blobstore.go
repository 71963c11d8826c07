package catalog

import (
	"context"

	"github.com/mynav/mynav/internal/domain"
)

// BlobStore is the durable substrate behind the catalog: three named
// collections, each read once at hydration and rewritten after every
// successful mutation. The bool result of the loaders reports whether
// the blob existed; absence is not an error.
type BlobStore interface {
	LoadLinks(ctx context.Context) ([]domain.Link, bool, error)
	SaveLinks(ctx context.Context, links []domain.Link) error

	LoadCategories(ctx context.Context) ([]domain.Category, bool, error)
	SaveCategories(ctx context.Context, categories []domain.Category) error

	LoadSettings(ctx context.Context) (domain.Settings, bool, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
