package models

import "fmt"

// PredictionResponse is the top-level JSON returned by POST /predict.
// The fields below current_price only appear when the backend has them.
type PredictionResponse struct {
	Symbol                string        `json:"symbol"`
	PredictedNextDayClose float64       `json:"predicted_next_day_close"`
	ActualLastClose       float64       `json:"actual_last_close"`
	MarginOfError         float64       `json:"margin_of_error"`
	CurrentPrice          float64       `json:"current_price,omitempty"`
	Historical            []Observation `json:"historical,omitempty"`
	Sentiment             string        `json:"sentiment,omitempty"`
	Summary               string        `json:"summary,omitempty"`
	Articles              []Article     `json:"articles,omitempty"`
}

func (r *PredictionResponse) ToString() string {
	return fmt.Sprintf("PredictionResponse(symbol=%s, predicted=%.2f, actual=%.2f, historical=%d)",
		r.Symbol, r.PredictedNextDayClose, r.ActualLastClose, len(r.Historical))
}
