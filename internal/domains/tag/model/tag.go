package model

// TagCloudEntry is one tag in the rendered tag cloud. Weight is a 1-10
// display-sizing value derived from use counts, not a stored column.
type TagCloudEntry struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	UseCount int64  `json:"use_count"`
}
