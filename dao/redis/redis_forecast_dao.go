package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/eeshan-ajmera/finance-project-ai/db"
	"github.com/eeshan-ajmera/finance-project-ai/models"
)

// FORECAST_KEY_FORMAT is used to cache the last prediction result per symbol.
const FORECAST_KEY_FORMAT = "forecast_v1:%s"

// NEWS_KEY_FORMAT is used to cache the last news digest per symbol.
const NEWS_KEY_FORMAT = "news_v1:%s"

// RedisForecastDAO holds the last remote responses per symbol so the result
// page can re-render (window navigation, reloads) without re-running the
// model. Entries are replaced wholesale on every new successful fetch.
type RedisForecastDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisForecastDAO initializes a RedisForecastDAO with the Redis client.
func NewRedisForecastDAO(client db.RedisClient, ttl time.Duration) *RedisForecastDAO {
	return &RedisForecastDAO{client: client, ttl: ttl}
}

// SetForecast caches the prediction response for its symbol.
func (dao *RedisForecastDAO) SetForecast(f *models.PredictionResponse) error {
	key := fmt.Sprintf(FORECAST_KEY_FORMAT, f.Symbol)
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast for symbol %s: %w", f.Symbol, err)
	}
	if err := dao.client.SetWithTTL(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set forecast in redis: %w", err)
	}
	return nil
}

// GetForecast retrieves the cached prediction response for a symbol.
func (dao *RedisForecastDAO) GetForecast(symbol string) (*models.PredictionResponse, error) {
	key := fmt.Sprintf(FORECAST_KEY_FORMAT, symbol)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast from redis: %w", err)
	}
	var f models.PredictionResponse
	if err := json.Unmarshal([]byte(str), &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast JSON: %w", err)
	}
	return &f, nil
}

// DeleteForecast drops the cached prediction response for a symbol.
func (dao *RedisForecastDAO) DeleteForecast(symbol string) error {
	key := fmt.Sprintf(FORECAST_KEY_FORMAT, symbol)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete forecast key %s: %w", key, err)
	}
	log.Printf("[RedisForecastDAO] Deleted forecast cache for %s", symbol)
	return nil
}

// ListCachedForecastSymbols returns the symbols for all cached forecasts.
func (dao *RedisForecastDAO) ListCachedForecastSymbols() ([]string, error) {
	// pattern matches the prefix used in SetForecast
	pattern := "forecast_v1:*"
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list forecast keys: %w", err)
	}

	symbols := make([]string, 0, len(keys))
	for _, k := range keys {
		// strip the prefix to get the raw symbol
		symbols = append(symbols, strings.TrimPrefix(k, "forecast_v1:"))
	}
	return symbols, nil
}

// SetNews caches the news digest for its symbol.
func (dao *RedisForecastDAO) SetNews(n *models.NewsResponse) error {
	key := fmt.Sprintf(NEWS_KEY_FORMAT, n.Symbol)
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal news for symbol %s: %w", n.Symbol, err)
	}
	if err := dao.client.SetWithTTL(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set news in redis: %w", err)
	}
	return nil
}

// GetNews retrieves the cached news digest for a symbol.
func (dao *RedisForecastDAO) GetNews(symbol string) (*models.NewsResponse, error) {
	key := fmt.Sprintf(NEWS_KEY_FORMAT, symbol)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get news from redis: %w", err)
	}
	var n models.NewsResponse
	if err := json.Unmarshal([]byte(str), &n); err != nil {
		return nil, fmt.Errorf("failed to unmarshal news JSON: %w", err)
	}
	return &n, nil
}
