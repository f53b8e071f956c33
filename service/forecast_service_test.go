package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eeshan-ajmera/finance-project-ai/dao/redis"
	"github.com/eeshan-ajmera/finance-project-ai/db"
	"github.com/eeshan-ajmera/finance-project-ai/models"
)

// stubPredictionAPI counts calls so cache behavior is observable.
type stubPredictionAPI struct {
	predictCalls int
	newsCalls    int
	forecast     *models.PredictionResponse
	news         *models.NewsResponse
	err          error
}

func (s *stubPredictionAPI) Predict(stock string) (*models.PredictionResponse, error) {
	s.predictCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.forecast, nil
}

func (s *stubPredictionAPI) GetNews(symbol string) (*models.NewsResponse, error) {
	s.newsCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.news, nil
}

func newTestService(api *stubPredictionAPI) *ForecastService {
	dao := redis.NewRedisForecastDAO(db.NewMockRedisClient(context.Background()), 30*time.Minute)
	return NewForecastService(dao, api)
}

func TestForecastService_PredictCachesResult(t *testing.T) {
	api := &stubPredictionAPI{
		forecast: &models.PredictionResponse{Symbol: "AAPL", PredictedNextDayClose: 213.47},
	}
	fs := newTestService(api)

	resp, err := fs.Predict("aapl")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, "AAPL", resp.Symbol)

	// the cached copy now serves re-renders without another model run
	cached, err := fs.GetForecast("AAPL")
	if err != nil {
		t.Fatalf("Expected cache hit, got %v", err)
	}
	assert.Equal(t, resp, cached)
	assert.Equal(t, 1, api.predictCalls)
}

func TestForecastService_PredictAlwaysRefetches(t *testing.T) {
	api := &stubPredictionAPI{
		forecast: &models.PredictionResponse{Symbol: "AAPL"},
	}
	fs := newTestService(api)

	// two user submissions mean two backend calls; the cache never
	// short-circuits an explicit prediction
	fs.Predict("AAPL")
	fs.Predict("AAPL")
	assert.Equal(t, 2, api.predictCalls)
}

func TestForecastService_GetForecastFallsBackOnMiss(t *testing.T) {
	api := &stubPredictionAPI{
		forecast: &models.PredictionResponse{Symbol: "TSLA"},
	}
	fs := newTestService(api)

	resp, err := fs.GetForecast("TSLA")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, "TSLA", resp.Symbol)
	assert.Equal(t, 1, api.predictCalls)
}

func TestForecastService_PredictError(t *testing.T) {
	api := &stubPredictionAPI{err: errors.New("Could not find a ticker symbol for 'XYZ'.")}
	fs := newTestService(api)

	resp, err := fs.Predict("XYZ")
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got %v", resp)
	}
}

func TestForecastService_GetNewsCaches(t *testing.T) {
	api := &stubPredictionAPI{
		news: &models.NewsResponse{Symbol: "AAPL", Sentiment: "neutral"},
	}
	fs := newTestService(api)

	first, err := fs.GetNews("AAPL")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := fs.GetNews("AAPL")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.newsCalls)
}
