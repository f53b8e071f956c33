// models/article.go
package models

// Article is a single news item attached to a forecast or news digest.
type Article struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}
