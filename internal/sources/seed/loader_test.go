package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSeedFile(t, `
categories:
  - id: tools
    name: 工具
  - name: media
links:
  - title: Example
    url: example.com
    category: tools
    icon: "🔗"
settings:
  password: pw
  theme: light
  language: en
`)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(file.Categories))
	}
	if file.Categories[0].ID != "tools" || file.Categories[0].Name != "工具" {
		t.Errorf("Categories[0] = %+v", file.Categories[0])
	}
	if file.Categories[1].ID != "" {
		t.Errorf("Categories[1].ID = %q, want empty", file.Categories[1].ID)
	}

	if len(file.Links) != 1 {
		t.Fatalf("len(Links) = %d, want 1", len(file.Links))
	}
	if file.Links[0].Title != "Example" || file.Links[0].URL != "example.com" {
		t.Errorf("Links[0] = %+v", file.Links[0])
	}

	if file.Settings == nil {
		t.Fatal("Settings = nil, want parsed settings")
	}
	if file.Settings.Password != "pw" || file.Settings.Theme != "light" || file.Settings.Language != "en" {
		t.Errorf("Settings = %+v", file.Settings)
	}
}

func TestLoaderEmptyFile(t *testing.T) {
	path := writeSeedFile(t, "")

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(file.Categories) != 0 || len(file.Links) != 0 || file.Settings != nil {
		t.Errorf("empty file must parse to zero value, got %+v", file)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoaderInvalidYAML(t *testing.T) {
	path := writeSeedFile(t, "links: [unclosed")

	_, err := NewLoader(path).Load()
	if err == nil {
		t.Fatal("Load() expected error for malformed yaml")
	}
}
