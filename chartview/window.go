package chartview

import (
	"math"

	"github.com/eeshan-ajmera/finance-project-ai/models"
)

// MONTHS_TO_SHOW is the width of the visible window in calendar months.
const MONTHS_TO_SHOW = 4

// AXIS_MARGIN is the fixed padding applied to the vertical axis range.
const AXIS_MARGIN = 15

// MonthKeys returns the unique YYYY-MM prefixes of the series dates in
// first-occurrence order. The series is assumed sorted ascending by date.
func MonthKeys(series []models.Observation) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, o := range series {
		k := monthKey(o.Date)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

func monthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// TotalWindows returns how many window positions exist for a month count.
// Always at least 1, even for an empty series.
func TotalWindows(monthCount int) int {
	n := monthCount - MONTHS_TO_SHOW + 1
	if n < 1 {
		return 1
	}
	return n
}

// DefaultWindowStart returns the start index of the most recent window.
func DefaultWindowStart(monthKeys []string) int {
	start := len(monthKeys) - MONTHS_TO_SHOW
	if start < 0 {
		return 0
	}
	return start
}

// ClampWindow forces a requested window start into [0, TotalWindows-1].
// Clamps on both ends; a negative request lands on 0.
func ClampWindow(requested int, monthKeys []string) int {
	last := TotalWindows(len(monthKeys)) - 1
	if requested > last {
		requested = last
	}
	if requested < 0 {
		requested = 0
	}
	return requested
}

// VisibleMonths returns the up-to-MONTHS_TO_SHOW month keys starting at
// window. A shorter tail slice is returned when fewer months remain.
func VisibleMonths(monthKeys []string, window int) []string {
	if window < 0 || window >= len(monthKeys) {
		return nil
	}
	end := window + MONTHS_TO_SHOW
	if end > len(monthKeys) {
		end = len(monthKeys)
	}
	return monthKeys[window:end]
}

// FilterVisible returns the observations whose month key is in
// visibleMonths, preserving the original order.
func FilterVisible(series []models.Observation, visibleMonths []string) []models.Observation {
	if len(visibleMonths) == 0 {
		return nil
	}
	member := make(map[string]struct{}, len(visibleMonths))
	for _, m := range visibleMonths {
		member[m] = struct{}{}
	}
	var out []models.Observation
	for _, o := range series {
		if _, ok := member[monthKey(o.Date)]; ok {
			out = append(out, o)
		}
	}
	return out
}

// AxisBounds computes the padded vertical axis range over the visible
// observations: (floor(min-AXIS_MARGIN), ceil(max+AXIS_MARGIN)).
// ok is false for an empty visible range; the caller must then fall back to
// automatic axis scaling instead of using the returned values.
func AxisBounds(visible []models.Observation) (yMin, yMax float64, ok bool) {
	for _, o := range visible {
		yMin, yMax, ok = accumulate(yMin, yMax, ok, o.Predicted)
		if o.Actual != nil {
			yMin, yMax, ok = accumulate(yMin, yMax, ok, *o.Actual)
		}
	}
	if !ok {
		return 0, 0, false
	}
	return math.Floor(yMin - AXIS_MARGIN), math.Ceil(yMax + AXIS_MARGIN), true
}

func accumulate(yMin, yMax float64, ok bool, v float64) (float64, float64, bool) {
	if !ok {
		return v, v, true
	}
	if v < yMin {
		yMin = v
	}
	if v > yMax {
		yMax = v
	}
	return yMin, yMax, true
}
