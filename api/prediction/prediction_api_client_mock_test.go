package prediction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eeshan-ajmera/finance-project-ai/config"
	"github.com/eeshan-ajmera/finance-project-ai/util"
)

// fixtures live at the repo root, two levels up from this package
func setProjectRoot(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	t.Setenv("PROJECT_ROOT", filepath.Join(wd, "..", ".."))
}

func TestMockPredict_Success(t *testing.T) {
	// Arrange
	setProjectRoot(t)
	client := NewPredictionApiClientMock()

	expected_response, err := util.ReadPredictionResponseFromJSON(config.GetResourcePath(config.PREDICTION_RESPONSE_RESOURCE))
	if err != nil {
		t.Errorf("expected no error when reading expected response, got %v", err)
	}

	// Act
	response, err := client.Predict("AAPL")

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	assert.Equal(t, expected_response, response, "Responses dont match")
}

func TestMockGetNews_Success(t *testing.T) {
	// Arrange
	setProjectRoot(t)
	client := NewPredictionApiClientMock()

	expected_response, err := util.ReadNewsResponseFromJSON(config.GetResourcePath(config.NEWS_RESPONSE_RESOURCE))
	if err != nil {
		t.Errorf("expected no error when reading expected response, got %v", err)
	}

	// Act
	response, err := client.GetNews("AAPL")

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	assert.Equal(t, expected_response, response, "Responses dont match")
}
