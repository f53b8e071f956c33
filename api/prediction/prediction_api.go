package prediction

import (
	"github.com/eeshan-ajmera/finance-project-ai/models"
)

// PredictionAPI defines the interface for interacting with the remote
// prediction and news backends.
type PredictionAPI interface {
	Predict(stock string) (*models.PredictionResponse, error)
	GetNews(symbol string) (*models.NewsResponse, error)
}
