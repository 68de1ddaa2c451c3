package domain

// Format is one document format in the catalog.
type Format struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// CategoryCount is the number of active formats in a category.
type CategoryCount struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}
