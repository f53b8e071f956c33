// models/news_response.go
package models

// NewsResponse is the JSON returned by the news/sentiment backend.
type NewsResponse struct {
	Symbol    string    `json:"symbol"`
	Sentiment string    `json:"sentiment"`
	Summary   string    `json:"summary"`
	Articles  []Article `json:"articles"`
}
