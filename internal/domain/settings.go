package domain

// Theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Language values. Chinese is the primary locale.
const (
	LanguageZH = "zh"
	LanguageEN = "en"
)

// Settings is the single presentation/access record of the catalog.
// It is always saved by wholesale replace, never merged field-by-field.
type Settings struct {
	// Password gates access to the catalog. Empty means no lock.
	// This is a plain-text gate, not a security boundary.
	Password string `json:"password,omitempty"`

	// BackgroundImageURL is an optional presentation backdrop.
	BackgroundImageURL string `json:"backgroundImageUrl,omitempty"`

	// Theme is "dark" or "light". Defaults to dark.
	Theme string `json:"theme,omitempty"`

	// Language is "zh" or "en". Defaults to zh.
	Language string `json:"language,omitempty"`
}

// WithDefaults returns a copy with empty or unrecognized theme and
// language values replaced by the defaults.
func (s Settings) WithDefaults() Settings {
	if s.Theme != ThemeLight {
		s.Theme = ThemeDark
	}
	if s.Language != LanguageEN {
		s.Language = LanguageZH
	}
	return s
}

// Locked reports whether a password is configured.
func (s Settings) Locked() bool {
	return s.Password != ""
}

// Redacted returns a copy safe to expose to outside callers:
// the password itself is never echoed back.
func (s Settings) Redacted() Settings {
	s.Password = ""
	return s
}
