package chartview

import "github.com/eeshan-ajmera/finance-project-ai/models"

// SeriesView tracks the currently visible month window over an ordered
// observation series. Replacing the series means building a new SeriesView;
// any previously chosen window position is discarded with it.
type SeriesView struct {
	series    []models.Observation
	monthKeys []string
	window    int
}

// NewSeriesView builds a view positioned on the most recent window.
func NewSeriesView(series []models.Observation) *SeriesView {
	keys := MonthKeys(series)
	return &SeriesView{
		series:    series,
		monthKeys: keys,
		window:    DefaultWindowStart(keys),
	}
}

// Window returns the current window start index.
func (v *SeriesView) Window() int {
	return v.window
}

// TotalWindows returns how many window positions this series has.
func (v *SeriesView) TotalWindows() int {
	return TotalWindows(len(v.monthKeys))
}

// SetWindow moves to the requested window start, clamped into range.
func (v *SeriesView) SetWindow(requested int) {
	v.window = ClampWindow(requested, v.monthKeys)
}

// Prev steps one window toward older data, saturating at 0.
func (v *SeriesView) Prev() {
	v.SetWindow(v.window - 1)
}

// Next steps one window toward more recent data, saturating at the last window.
func (v *SeriesView) Next() {
	v.SetWindow(v.window + 1)
}

// HasPrev reports whether a Prev step would move the window.
func (v *SeriesView) HasPrev() bool {
	return v.window > 0
}

// HasNext reports whether a Next step would move the window.
func (v *SeriesView) HasNext() bool {
	return v.window < v.TotalWindows()-1
}

// VisibleMonths returns the month keys covered by the current window.
func (v *SeriesView) VisibleMonths() []string {
	return VisibleMonths(v.monthKeys, v.window)
}

// VisibleObservations returns a fresh filtered slice of the observations
// inside the current window.
func (v *SeriesView) VisibleObservations() []models.Observation {
	return FilterVisible(v.series, v.VisibleMonths())
}

// AxisBounds returns the padded axis range for the current window.
func (v *SeriesView) AxisBounds() (float64, float64, bool) {
	return AxisBounds(v.VisibleObservations())
}
