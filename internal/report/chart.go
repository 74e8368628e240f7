package report

import (
	"context"
	"html/template"
	"log/slog"

	grob "github.com/MetalBlueberry/go-plotly/generated/v2.34.0/graph_objects"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// Chart is one rendered report card
type Chart struct {
	Key      domain.SummaryKey
	Figure   *grob.Fig
	Fragment template.HTML
	// Fallback holds a static SVG of the chart, empty when not requested
	// or when drawing failed.
	Fallback template.HTML
}

// RenderOptions controls optional chart output
type RenderOptions struct {
	StaticFallback bool
}

// Renderer turns summary tables into chart fragments
type Renderer struct {
	logger *slog.Logger
	opts   RenderOptions
}

// NewRenderer creates a Renderer. A nil logger falls back to slog.Default().
func NewRenderer(logger *slog.Logger, opts RenderOptions) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger, opts: opts}
}

// Render returns one chart per table in report card order. Tables with
// unknown keys are ignored; absent keys leave no gap.
func (r *Renderer) Render(ctx context.Context, tables []domain.SummaryTable) ([]Chart, error) {
	byKey := make(map[domain.SummaryKey]domain.SummaryTable, len(tables))
	for _, t := range tables {
		byKey[t.Key] = t
	}

	charts := make([]Chart, 0, len(tables))
	for _, key := range domain.SummaryOrder {
		table, ok := byKey[key]
		if !ok {
			continue
		}

		fig, err := NewFigure(table)
		if err != nil {
			return nil, errors.NewRenderError("failed to build chart", err).WithContext("chart", string(key))
		}
		fragment, err := Fragment(ElementID(key), fig)
		if err != nil {
			return nil, errors.NewRenderError("failed to serialize chart", err).WithContext("chart", string(key))
		}

		chart := Chart{
			Key:      key,
			Figure:   fig,
			Fragment: template.HTML(fragment),
		}

		if r.opts.StaticFallback {
			svg, err := StaticSVG(table)
			if err != nil {
				r.logger.WarnContext(ctx, "Static chart fallback skipped",
					slog.String("chart", string(key)),
					slog.String("error", err.Error()))
			} else {
				chart.Fallback = template.HTML(svg)
			}
		}

		r.logger.DebugContext(ctx, "Chart rendered",
			slog.String("chart", string(key)),
			slog.Int("points", len(table.Rows)),
			slog.Bool("fallback", chart.Fallback != ""))
		charts = append(charts, chart)
	}

	return charts, nil
}
