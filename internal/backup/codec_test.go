package backup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mynav/mynav/internal/catalog"
	"github.com/mynav/mynav/internal/domain"
	"github.com/mynav/mynav/internal/logger"
	"github.com/mynav/mynav/internal/store/memory"
)

func newTestCatalog(t *testing.T) *catalog.Store {
	t.Helper()

	s := catalog.NewStore(memory.NewStore(), logger.Nop())
	err := s.Hydrate(context.Background(), catalog.Seed{
		Links:      domain.DefaultLinks(),
		Categories: domain.DefaultCategories(),
		Settings:   domain.DefaultSettings(),
	})
	require.NoError(t, err)
	return s
}

func TestExport(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	links := []domain.Link{{ID: "1", Title: "A", URL: "https://a"}}
	cats := []domain.Category{{ID: "c", Name: "cat"}}
	settings := domain.Settings{Password: "pw", Theme: domain.ThemeDark, Language: domain.LanguageZH}

	doc := Export(links, cats, settings, now)
	require.Equal(t, Version, doc.Version)
	require.Equal(t, "2026-08-30T12:00:00Z", doc.Date)
	require.Equal(t, links, doc.Links)
	require.Equal(t, cats, doc.Categories)
	require.NotNil(t, doc.Settings)
	require.Equal(t, "pw", doc.Settings.Password, "export carries the password verbatim")
}

func TestExportStampsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	now := time.Date(2026, 8, 30, 20, 0, 0, 0, loc)

	doc := Export(nil, nil, domain.Settings{}, now)
	require.Equal(t, "2026-08-30T12:00:00Z", doc.Date)
}

func TestDecodeRoundTrip(t *testing.T) {
	s := newTestCatalog(t)
	links, cats, settings := s.Snapshot()

	doc := Export(links, cats, settings, time.Now())
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, doc.Links, decoded.Links)
	require.Equal(t, doc.Categories, decoded.Categories)
	require.Equal(t, doc.Settings, decoded.Settings)
}

func TestDecodeRejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"empty object", "{}"},
		{"links null", `{"version":1,"links":null}`},
		{"links not an array", `{"version":1,"links":"oops"}`},
		{"links an object", `{"version":1,"links":{"a":1}}`},
		{"unsupported version", `{"version":2,"links":[]}`},
		{"json array at top level", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.ErrorIs(t, err, domain.ErrBackupFormat)
		})
	}
}

func TestDecodeAcceptsMinimalDocument(t *testing.T) {
	// A hand-written file with just a links array and no version.
	doc, err := Decode([]byte(`{"links":[]}`))
	require.NoError(t, err)
	require.Empty(t, doc.Links)
	require.Nil(t, doc.Categories)
	require.Nil(t, doc.Settings)
}

func TestImportReplacesCatalog(t *testing.T) {
	s := newTestCatalog(t)
	ctx := context.Background()

	doc, err := Decode([]byte(`{
		"version": 1,
		"links": [{"id":"n1","title":"Imported","url":"https://i.example","category":"c1","visits":3}],
		"categories": [{"id":"c1","name":"imported"}],
		"settings": {"password":"pw","theme":"light","language":"en"}
	}`))
	require.NoError(t, err)
	require.NoError(t, Import(ctx, s, doc))

	links := s.Links()
	require.Len(t, links, 1)
	require.Equal(t, "Imported", links[0].Title)
	require.EqualValues(t, 3, links[0].Visits, "imported visit counts survive verbatim")
	require.Len(t, s.Categories(), 1)
	require.Equal(t, "pw", s.Password())
	require.Equal(t, domain.ThemeLight, s.Settings().Theme)
}

func TestImportWithoutCategoriesKeepsCurrent(t *testing.T) {
	s := newTestCatalog(t)
	before := s.Categories()

	doc, err := Decode([]byte(`{"version":1,"links":[]}`))
	require.NoError(t, err)
	require.NoError(t, Import(context.Background(), s, doc))

	require.Empty(t, s.Links())
	require.Equal(t, before, s.Categories())
}

func TestImportWithoutSettingsKeepsCurrent(t *testing.T) {
	s := newTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSettings(ctx, domain.Settings{Password: "keep"}))

	doc, err := Decode([]byte(`{"version":1,"links":[],"categories":[{"id":"c","name":"c"}]}`))
	require.NoError(t, err)
	require.NoError(t, Import(ctx, s, doc))
	require.Equal(t, "keep", s.Password())
}

func TestRejectedImportLeavesStoreUntouched(t *testing.T) {
	s := newTestCatalog(t)
	beforeLinks := s.Links()
	beforeCats := s.Categories()

	_, err := Decode([]byte(`{"version":1}`))
	require.ErrorIs(t, err, domain.ErrBackupFormat)

	require.Equal(t, beforeLinks, s.Links())
	require.Equal(t, beforeCats, s.Categories())
}
