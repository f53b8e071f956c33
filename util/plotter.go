package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/eeshan-ajmera/finance-project-ai/chartview"
)

// PlotForecast renders the actual-vs-predicted line chart for the view's
// currently visible month window into w as a standalone HTML document.
func PlotForecast(w io.Writer, symbol string, view *chartview.SeriesView) error {
	visible := view.VisibleObservations()

	dates := make([]string, len(visible))
	actualData := make([]opts.LineData, len(visible))
	predictedData := make([]opts.LineData, len(visible))
	for i, o := range visible {
		dates[i] = o.Date
		if o.Actual != nil {
			actualData[i] = opts.LineData{Value: *o.Actual}
		} else {
			// echarts renders "-" as a gap; future dates have no actual close
			actualData[i] = opts.LineData{Value: "-"}
		}
		predictedData[i] = opts.LineData{Value: o.Predicted}
	}

	// Create a new Line chart.
	line := charts.NewLine()

	globalOpts := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: symbol + " Forecast",
			Width:     "800px",
			Height:    "450px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: symbol + ": Actual vs Predicted Close",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	}

	// Pin the vertical axis to the padded window range; an empty window has
	// no defined bounds and falls back to automatic scaling.
	if yMin, yMax, ok := view.AxisBounds(); ok {
		globalOpts = append(globalOpts, charts.WithYAxisOpts(opts.YAxis{
			Min: yMin,
			Max: yMax,
		}))
	}
	line.SetGlobalOptions(globalOpts...)

	line.SetXAxis(dates).
		AddSeries("Actual", actualData).
		AddSeries("Predicted", predictedData,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(true),
			}))

	// Render the chart into the writer.
	return line.Render(w)
}
