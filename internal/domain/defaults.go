package domain

// DefaultCategories is the built-in category set used when the durable
// substrate is empty and no seed file is configured.
func DefaultCategories() []Category {
	return []Category{
		{ID: "social", Name: "社交"},
		{ID: "work", Name: "工作"},
		{ID: "dev", Name: "开发"},
		{ID: "news", Name: "资讯"},
		{ID: "tools", Name: "工具"},
	}
}

// DefaultLinks is the built-in starter catalog.
func DefaultLinks() []Link {
	return []Link{
		{
			ID:          "1",
			Title:       "Google",
			URL:         "https://google.com",
			Category:    "tools",
			Icon:        "🔍",
			Description: "全球最大的搜索引擎",
		},
		{
			ID:          "2",
			Title:       "GitHub",
			URL:         "https://github.com",
			Category:    "dev",
			Icon:        "🐙",
			Description: "代码托管与协作平台",
		},
		{
			ID:          "3",
			Title:       "Bilibili",
			URL:         "https://www.bilibili.com",
			Category:    "social",
			Icon:        "📺",
			Description: "国内知名的视频弹幕网站",
		},
		{
			ID:          "4",
			Title:       "ChatGPT",
			URL:         "https://chat.openai.com",
			Category:    "tools",
			Icon:        "🤖",
			Description: "强大的 AI 助手",
		},
	}
}

// DefaultSettings is the first-run settings record.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeDark, Language: LanguageZH}
}
