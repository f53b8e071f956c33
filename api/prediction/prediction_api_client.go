package prediction

import (
	"net/url"
	"strings"

	"github.com/eeshan-ajmera/finance-project-ai/api"
	"github.com/eeshan-ajmera/finance-project-ai/models"
)

// PredictionApiClient embeds the common HTTPClient for the prediction backend.
// News may live on a different host, so it gets its own client.
type PredictionApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	newsClient      *api.HTTPClient
}

// NewPredictionApiClient creates a new instance of PredictionApiClient
func NewPredictionApiClient(httpClient *api.HTTPClient, newsClient *api.HTTPClient) *PredictionApiClient {
	return &PredictionApiClient{
		HTTPClient: httpClient,
		newsClient: newsClient,
	}
}

// Predict forwards the raw user input to POST /predict and decodes the
// forecast response. One request per call; no retry, no de-duplication.
func (c *PredictionApiClient) Predict(stock string) (*models.PredictionResponse, error) {
	request := models.PredictRequest{Stock: strings.ToUpper(strings.TrimSpace(stock))}
	var response models.PredictionResponse
	err := c.Request("POST", "/predict", nil, request, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetNews retrieves the sentiment/news digest for a resolved symbol.
func (c *PredictionApiClient) GetNews(symbol string) (*models.NewsResponse, error) {
	var response models.NewsResponse
	err := c.newsClient.Request("GET", "/news?symbol="+url.QueryEscape(symbol), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
