package prediction

import (
	"fmt"

	"github.com/eeshan-ajmera/finance-project-ai/config"
	"github.com/eeshan-ajmera/finance-project-ai/models"
	"github.com/eeshan-ajmera/finance-project-ai/util"
)

// PredictionApiClientMock embeds mocked logic for the prediction api client
type PredictionApiClientMock struct {
}

// NewPredictionApiClientMock creates a new instance of PredictionApiClientMock
func NewPredictionApiClientMock() *PredictionApiClientMock {
	return &PredictionApiClientMock{}
}

// Predict returns the canned forecast response from the resources fixture.
func (c *PredictionApiClientMock) Predict(stock string) (*models.PredictionResponse, error) {
	response, err := util.ReadPredictionResponseFromJSON(config.GetResourcePath(config.PREDICTION_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read prediction response from json")
		return nil, err
	}

	return response, nil
}

// GetNews returns the canned news digest from the resources fixture.
func (c *PredictionApiClientMock) GetNews(symbol string) (*models.NewsResponse, error) {
	response, err := util.ReadNewsResponseFromJSON(config.GetResourcePath(config.NEWS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read news response from json")
		return nil, err
	}

	return response, nil
}
