package chartview

import (
	"testing"

	"github.com/eeshan-ajmera/finance-project-ai/models"
	"github.com/stretchr/testify/assert"
)

func TestSeriesView_SevenMonthScenario(t *testing.T) {
	view := NewSeriesView(sevenMonthSeries())

	if view.TotalWindows() != 4 {
		t.Fatalf("Expected 4 windows, got %d", view.TotalWindows())
	}
	// defaults to the most recent window
	if view.Window() != 3 {
		t.Fatalf("Expected default window 3, got %d", view.Window())
	}
	assert.Equal(t, []string{"2024-04", "2024-05", "2024-06", "2024-07"}, view.VisibleMonths())
	assert.True(t, view.HasPrev())
	assert.False(t, view.HasNext())

	// three Prev presses reach window 0
	view.Prev()
	view.Prev()
	view.Prev()
	if view.Window() != 0 {
		t.Fatalf("Expected window 0 after three Prev, got %d", view.Window())
	}
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03", "2024-04"}, view.VisibleMonths())
	assert.False(t, view.HasPrev())
	assert.True(t, view.HasNext())

	// further decrements are no-ops
	view.Prev()
	if view.Window() != 0 {
		t.Errorf("Expected Prev to saturate at 0, got %d", view.Window())
	}
}

func TestSeriesView_NextSaturates(t *testing.T) {
	view := NewSeriesView(sevenMonthSeries())

	view.Next()
	if view.Window() != 3 {
		t.Errorf("Expected Next to saturate at last window 3, got %d", view.Window())
	}
}

func TestSeriesView_SetWindowClamps(t *testing.T) {
	view := NewSeriesView(sevenMonthSeries())

	view.SetWindow(-2)
	assert.Equal(t, 0, view.Window())

	view.SetWindow(99)
	assert.Equal(t, 3, view.Window())
}

func TestSeriesView_EmptySeries(t *testing.T) {
	view := NewSeriesView(nil)

	assert.Equal(t, 1, view.TotalWindows())
	assert.Equal(t, 0, view.Window())
	assert.Empty(t, view.VisibleMonths())
	assert.Empty(t, view.VisibleObservations())
	assert.False(t, view.HasPrev())
	assert.False(t, view.HasNext())

	_, _, ok := view.AxisBounds()
	assert.False(t, ok, "axis bounds must be undefined for an empty series")
}

func TestSeriesView_ShortSeriesSingleWindow(t *testing.T) {
	series := []models.Observation{
		obs("2024-01-02", 100, 101),
		obs("2024-02-02", 102, 103),
	}
	view := NewSeriesView(series)

	assert.Equal(t, 1, view.TotalWindows())
	assert.Equal(t, 0, view.Window())
	assert.Equal(t, []string{"2024-01", "2024-02"}, view.VisibleMonths())
	// both navigation directions disabled
	assert.False(t, view.HasPrev())
	assert.False(t, view.HasNext())
	assert.Len(t, view.VisibleObservations(), 2)
}

func TestSeriesView_NewSeriesResetsWindow(t *testing.T) {
	view := NewSeriesView(sevenMonthSeries())
	view.SetWindow(0)

	// a new result replaces the view wholesale; manual navigation is discarded
	replaced := NewSeriesView(sevenMonthSeries())
	if replaced.Window() != 3 {
		t.Errorf("Expected fresh view at default window 3, got %d", replaced.Window())
	}
}

func TestSeriesView_VisibleObservationsFreshSlice(t *testing.T) {
	view := NewSeriesView(sevenMonthSeries())

	first := view.VisibleObservations()
	view.Prev()
	second := view.VisibleObservations()

	assert.NotEqual(t, first[0].Date, second[0].Date)
}
