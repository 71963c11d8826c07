package seed

// File represents the top-level structure of a seed catalog YAML file.
// Every section is optional; missing sections fall back to the
// built-in defaults.
type File struct {
	Categories []CategoryEntry `yaml:"categories,omitempty"`
	Links      []LinkEntry     `yaml:"links,omitempty"`
	Settings   *SettingsEntry  `yaml:"settings,omitempty"`
}

// CategoryEntry is one starter category.
type CategoryEntry struct {
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name"`
}

// LinkEntry is one starter link.
type LinkEntry struct {
	ID          string `yaml:"id,omitempty"`
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Category    string `yaml:"category,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// SettingsEntry carries the optional first-run settings.
type SettingsEntry struct {
	Password           string `yaml:"password,omitempty"`
	BackgroundImageURL string `yaml:"backgroundImageUrl,omitempty"`
	Theme              string `yaml:"theme,omitempty"`
	Language           string `yaml:"language,omitempty"`
}
