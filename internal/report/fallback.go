package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

const (
	fallbackWidth  = 960
	fallbackHeight = 420
)

// StaticSVG draws a summary table as a static SVG for pages viewed without
// the Plotly runtime. go-chart has no horizontal bars, so bar tables are
// drawn vertically; a one-point trend is drawn as a bar.
func StaticSVG(table domain.SummaryTable) ([]byte, error) {
	spec, ok := SpecFor(table.Key)
	if !ok {
		return nil, fmt.Errorf("no chart defined for summary %q", table.Key)
	}
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("summary %q has no rows", table.Key)
	}

	var buf bytes.Buffer
	var err error

	switch {
	case spec.Kind == KindLine && len(table.Rows) > 1:
		err = lineChart(spec, table).Render(chart.SVG, &buf)
	case spec.Kind == KindDonut:
		var donut chart.DonutChart
		if donut, err = donutChart(spec, table); err == nil {
			err = donut.Render(chart.SVG, &buf)
		}
	default:
		var bars chart.BarChart
		if bars, err = barChart(spec, table); err == nil {
			err = bars.Render(chart.SVG, &buf)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to draw %s fallback: %w", table.Key, err)
	}
	return buf.Bytes(), nil
}

func lineChart(spec ChartSpec, table domain.SummaryTable) chart.Chart {
	xs := make([]float64, len(table.Rows))
	ticks := make([]chart.Tick, len(table.Rows))
	for i, row := range table.Rows {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: row.Label}
	}

	return chart.Chart{
		Title:  spec.Title,
		Width:  fallbackWidth,
		Height: fallbackHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{Name: spec.YTitle},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.YTitle,
				XValues: xs,
				YValues: table.Values(),
			},
		},
	}
}

func barChart(spec ChartSpec, table domain.SummaryTable) (chart.BarChart, error) {
	bars := make([]chart.Value, len(table.Rows))
	lo, hi := 0.0, 0.0
	for i, row := range table.Rows {
		bars[i] = chart.Value{Label: row.Label, Value: row.Value}
		if row.Value < lo {
			lo = row.Value
		}
		if row.Value > hi {
			hi = row.Value
		}
	}
	if lo == hi {
		return chart.BarChart{}, fmt.Errorf("all values are zero")
	}

	return chart.BarChart{
		Title:  spec.Title,
		Width:  fallbackWidth,
		Height: fallbackHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		BarWidth: 40,
		Bars:     bars,
	}, nil
}

func donutChart(spec ChartSpec, table domain.SummaryTable) (chart.DonutChart, error) {
	var values []chart.Value
	for _, row := range table.Rows {
		if row.Value > 0 {
			values = append(values, chart.Value{Label: row.Label, Value: row.Value})
		}
	}
	if len(values) == 0 {
		return chart.DonutChart{}, fmt.Errorf("no positive values")
	}

	return chart.DonutChart{
		Title:  spec.Title,
		Width:  fallbackHeight,
		Height: fallbackHeight,
		Values: values,
	}, nil
}
