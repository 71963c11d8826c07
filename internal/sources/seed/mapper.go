package seed

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mynav/mynav/internal/catalog"
	"github.com/mynav/mynav/internal/domain"
)

// Mapper converts a parsed seed file into a catalog seed.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map builds the catalog seed. Entries without an explicit ID get a
// fresh one; entries with an empty name, title or URL are skipped.
// Sections absent from the file fall back to the built-in defaults, so
// a seed file may override only the parts it cares about.
func (m *Mapper) Map(file File) catalog.Seed {
	s := catalog.Seed{
		Links:      domain.DefaultLinks(),
		Categories: domain.DefaultCategories(),
		Settings:   domain.DefaultSettings(),
	}

	if len(file.Categories) > 0 {
		categories := make([]domain.Category, 0, len(file.Categories))
		for _, entry := range file.Categories {
			name := strings.TrimSpace(entry.Name)
			if name == "" {
				continue
			}
			id := entry.ID
			if id == "" {
				id = uuid.NewString()
			}
			categories = append(categories, domain.Category{ID: id, Name: name})
		}
		if len(categories) > 0 {
			s.Categories = categories
		}
	}

	if len(file.Links) > 0 {
		links := make([]domain.Link, 0, len(file.Links))
		for _, entry := range file.Links {
			if strings.TrimSpace(entry.Title) == "" || strings.TrimSpace(entry.URL) == "" {
				continue
			}
			id := entry.ID
			if id == "" {
				id = uuid.NewString()
			}
			links = append(links, domain.Link{
				ID:          id,
				Title:       entry.Title,
				URL:         domain.NormalizeURL(entry.URL),
				Category:    entry.Category,
				Icon:        entry.Icon,
				Description: entry.Description,
				Visits:      0,
			})
		}
		s.Links = links
	}

	if file.Settings != nil {
		s.Settings = domain.Settings{
			Password:           file.Settings.Password,
			BackgroundImageURL: file.Settings.BackgroundImageURL,
			Theme:              file.Settings.Theme,
			Language:           file.Settings.Language,
		}.WithDefaults()
	}

	return s
}
