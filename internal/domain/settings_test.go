package domain

import "testing"

func TestSettingsWithDefaults(t *testing.T) {
	tests := []struct {
		name         string
		in           Settings
		wantTheme    string
		wantLanguage string
	}{
		{"empty falls back", Settings{}, ThemeDark, LanguageZH},
		{"light kept", Settings{Theme: ThemeLight, Language: LanguageEN}, ThemeLight, LanguageEN},
		{"unknown theme collapses to dark", Settings{Theme: "sepia"}, ThemeDark, LanguageZH},
		{"unknown language collapses to zh", Settings{Language: "fr"}, ThemeDark, LanguageZH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.WithDefaults()
			if got.Theme != tt.wantTheme {
				t.Errorf("WithDefaults().Theme = %q, want %q", got.Theme, tt.wantTheme)
			}
			if got.Language != tt.wantLanguage {
				t.Errorf("WithDefaults().Language = %q, want %q", got.Language, tt.wantLanguage)
			}
		})
	}
}

func TestSettingsLocked(t *testing.T) {
	if (Settings{}).Locked() {
		t.Error("empty password must not lock the catalog")
	}
	if !(Settings{Password: "hunter2"}).Locked() {
		t.Error("non-empty password must lock the catalog")
	}
}

func TestSettingsRedacted(t *testing.T) {
	s := Settings{Password: "hunter2", Theme: ThemeLight, Language: LanguageEN}
	r := s.Redacted()
	if r.Password != "" {
		t.Errorf("Redacted().Password = %q, want empty", r.Password)
	}
	if r.Theme != ThemeLight || r.Language != LanguageEN {
		t.Error("Redacted() must keep the remaining fields")
	}
	if s.Password != "hunter2" {
		t.Error("Redacted() must not mutate the receiver")
	}
}
