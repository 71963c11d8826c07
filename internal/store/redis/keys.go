package redis

const (
	// KeyLinks holds the JSON blob of the full link sequence.
	KeyLinks = "mynav:links"
	// KeyCategories holds the JSON blob of the category sequence.
	KeyCategories = "mynav:categories"
	// KeySettings holds the JSON blob of the settings record.
	KeySettings = "mynav:settings"
)
