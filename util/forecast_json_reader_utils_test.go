package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestReadPredictionResponseFromJSON(t *testing.T) {
	path := writeTempJSON(t, "prediction.json", `{
		"symbol": "AAPL",
		"predicted_next_day_close": 213.47,
		"actual_last_close": 211.18,
		"margin_of_error": 3.52,
		"historical": [
			{"date": "2024-07-19", "actual": 224.31, "predicted": 222.64},
			{"date": "2024-07-22", "predicted": 225.12}
		]
	}`)

	resp, err := ReadPredictionResponseFromJSON(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, "AAPL", resp.Symbol)
	assert.Equal(t, 213.47, resp.PredictedNextDayClose)
	assert.Len(t, resp.Historical, 2)
	// absent actual decodes as nil, present one as a value
	assert.NotNil(t, resp.Historical[0].Actual)
	assert.Equal(t, 224.31, *resp.Historical[0].Actual)
	assert.Nil(t, resp.Historical[1].Actual)
}

func TestReadPredictionResponseFromJSON_MissingFile(t *testing.T) {
	resp, err := ReadPredictionResponseFromJSON(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got %v", resp)
	}
}

func TestReadNewsResponseFromJSON(t *testing.T) {
	path := writeTempJSON(t, "news.json", `{
		"symbol": "AAPL",
		"sentiment": "negative",
		"summary": "Coverage skews negative.",
		"articles": [{"title": "Regulators probe app store terms", "url": "https://example.com/probe"}]
	}`)

	resp, err := ReadNewsResponseFromJSON(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, "negative", resp.Sentiment)
	assert.Len(t, resp.Articles, 1)
	assert.Equal(t, "Regulators probe app store terms", resp.Articles[0].Title)
}

func TestReadNewsResponseFromJSON_Malformed(t *testing.T) {
	path := writeTempJSON(t, "bad.json", `{"invalid_json`)

	if _, err := ReadNewsResponseFromJSON(path); err == nil {
		t.Fatal("Expected an error for malformed JSON, got nil")
	}
}
