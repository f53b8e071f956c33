package models

// Observation pairs one trading day's actual close with the model's
// predicted close. Actual is nil for dates the market has not traded yet.
type Observation struct {
	Date      string   `json:"date"`
	Actual    *float64 `json:"actual,omitempty"`
	Predicted float64  `json:"predicted"`
}
