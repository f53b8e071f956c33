package services

import (
	"log"

	"github.com/eeshan-ajmera/finance-project-ai/api/prediction"
	"github.com/eeshan-ajmera/finance-project-ai/dao/redis"
	"github.com/eeshan-ajmera/finance-project-ai/models"
)

// ForecastService orchestrates the remote prediction/news backends and the
// forecast cache. A user-submitted prediction always hits the backend and
// replaces the cached entry; page re-renders read the cache first.
type ForecastService struct {
	forecastDao   *redis.RedisForecastDAO
	predictionApi prediction.PredictionAPI
}

// NewForecastService constructs a new ForecastService with its dependencies.
func NewForecastService(
	forecastDao *redis.RedisForecastDAO,
	predictionApi prediction.PredictionAPI) *ForecastService {

	return &ForecastService{
		forecastDao:   forecastDao,
		predictionApi: predictionApi,
	}
}

// Predict runs a fresh prediction for the user's input and replaces whatever
// was cached for the resolved symbol.
func (fs *ForecastService) Predict(stock string) (*models.PredictionResponse, error) {
	log.Printf("[ForecastService] Requesting prediction for %q", stock)
	resp, err := fs.predictionApi.Predict(stock)
	if err != nil {
		return nil, err
	}

	if err := fs.forecastDao.SetForecast(resp); err != nil {
		// cache failure must not lose the result the user is waiting on
		log.Printf("[ForecastService] Failed to cache forecast for %s: %v", resp.Symbol, err)
	}
	return resp, nil
}

// GetForecast returns the cached forecast for a symbol, falling back to a
// fresh prediction on a cache miss.
func (fs *ForecastService) GetForecast(symbol string) (*models.PredictionResponse, error) {
	cached, err := fs.forecastDao.GetForecast(symbol)
	if err == nil {
		return cached, nil
	}
	log.Printf("[ForecastService] Cache miss for %s, fetching fresh forecast", symbol)
	return fs.Predict(symbol)
}

// GetNews returns the cached news digest for a symbol, fetching and caching
// it on a miss.
func (fs *ForecastService) GetNews(symbol string) (*models.NewsResponse, error) {
	cached, err := fs.forecastDao.GetNews(symbol)
	if err == nil {
		return cached, nil
	}

	log.Printf("[ForecastService] Cache miss for %s news, fetching digest", symbol)
	news, err := fs.predictionApi.GetNews(symbol)
	if err != nil {
		return nil, err
	}
	if err := fs.forecastDao.SetNews(news); err != nil {
		log.Printf("[ForecastService] Failed to cache news for %s: %v", symbol, err)
	}
	return news, nil
}

// ListCachedSymbols returns the symbols with a live cached forecast.
func (fs *ForecastService) ListCachedSymbols() ([]string, error) {
	return fs.forecastDao.ListCachedForecastSymbols()
}
