package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/eeshan-ajmera/finance-project-ai/models"
)

// ReadPredictionResponseFromJSON loads a PredictionResponse from JSON on disk.
func ReadPredictionResponseFromJSON(filePath string) (*models.PredictionResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.PredictionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PredictionResponse: %w", err)
	}
	return &resp, nil
}

// ReadNewsResponseFromJSON loads a NewsResponse from JSON on disk.
func ReadNewsResponseFromJSON(filePath string) (*models.NewsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.NewsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NewsResponse: %w", err)
	}
	return &resp, nil
}
