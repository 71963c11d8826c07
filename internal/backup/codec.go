// Package backup serializes a full catalog snapshot into a portable,
// self-describing JSON document and validates external documents back
// into the store.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mynav/mynav/internal/catalog"
	"github.com/mynav/mynav/internal/domain"
)

// Version is the backup document schema version. Import accepts only
// documents carrying this version (or none, for hand-written files).
const Version = 1

// Document is the portable backup format:
// {version, date, links, categories, settings}.
// links is mandatory for import acceptance; the rest is optional.
type Document struct {
	Version    int               `json:"version"`
	Date       string            `json:"date"`
	Links      []domain.Link     `json:"links"`
	Categories []domain.Category `json:"categories,omitempty"`
	Settings   *domain.Settings  `json:"settings,omitempty"`
}

// Export captures the full catalog verbatim, stamped with the current
// time in RFC 3339.
func Export(links []domain.Link, categories []domain.Category, settings domain.Settings, now time.Time) Document {
	return Document{
		Version:    Version,
		Date:       now.UTC().Format(time.RFC3339),
		Links:      links,
		Categories: categories,
		Settings:   &settings,
	}
}

// rawDocument distinguishes an absent links field from an empty one.
type rawDocument struct {
	Version    *int              `json:"version"`
	Date       string            `json:"date"`
	Links      json.RawMessage   `json:"links"`
	Categories []domain.Category `json:"categories"`
	Settings   *domain.Settings  `json:"settings"`
}

// Decode parses and validates a backup document. The data must be
// valid JSON carrying a links array (empty is fine); anything else is
// rejected as a format error and nothing is imported.
func Decode(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", domain.ErrBackupFormat, err)
	}
	if raw.Version != nil && *raw.Version != Version {
		return Document{}, fmt.Errorf("%w: unsupported version %d", domain.ErrBackupFormat, *raw.Version)
	}
	if len(raw.Links) == 0 {
		return Document{}, fmt.Errorf("%w: missing links field", domain.ErrBackupFormat)
	}

	var links []domain.Link
	if err := json.Unmarshal(raw.Links, &links); err != nil {
		return Document{}, fmt.Errorf("%w: links is not an array: %v", domain.ErrBackupFormat, err)
	}
	if links == nil {
		// "links": null is not an array either.
		return Document{}, fmt.Errorf("%w: links is not an array", domain.ErrBackupFormat)
	}

	doc := Document{
		Version:    Version,
		Date:       raw.Date,
		Links:      links,
		Categories: raw.Categories,
		Settings:   raw.Settings,
	}
	return doc, nil
}

// Import applies a decoded document to the store: links always,
// categories when present, settings only when the document carries
// them. The swap is all-or-nothing through the store's ReplaceAll.
//
// The destructive-replace confirmation is the caller's concern; Import
// assumes it has already been given.
func Import(ctx context.Context, store *catalog.Store, doc Document) error {
	categories := doc.Categories
	if categories == nil {
		// A document without categories keeps the current set.
		categories = store.Categories()
	}
	return store.ReplaceAll(ctx, doc.Links, categories, doc.Settings)
}
