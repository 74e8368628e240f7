package operations

import (
	"context"
	"fmt"
	"time"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/dataprocessing"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/exporter"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/report"
)

// LoadStep reads the workbook into the record table
type LoadStep struct {
	loader *dataprocessing.Loader
}

func NewLoadStep(loader *dataprocessing.Loader) *LoadStep {
	return &LoadStep{loader: loader}
}

func (s *LoadStep) ID() string   { return StepLoad }
func (s *LoadStep) Name() string { return "Load workbook" }

func (s *LoadStep) Execute(ctx context.Context, state *RunState) error {
	table, err := s.loader.Load(ctx, state.InputPath)
	if err != nil {
		return err
	}
	state.Table = table
	return nil
}

// AggregateStep computes the KPIs and summary tables
type AggregateStep struct {
	summarizer *dataprocessing.Summarizer
}

func NewAggregateStep(summarizer *dataprocessing.Summarizer) *AggregateStep {
	return &AggregateStep{summarizer: summarizer}
}

func (s *AggregateStep) ID() string   { return StepAggregate }
func (s *AggregateStep) Name() string { return "Aggregate sales" }

func (s *AggregateStep) Execute(ctx context.Context, state *RunState) error {
	if state.Table == nil {
		return fmt.Errorf("no record table loaded")
	}
	state.KPIs = dataprocessing.ComputeKPIs(state.Table)
	state.Summaries = s.summarizer.Build(ctx, state.Table)
	return nil
}

// RenderStep turns the summaries into charts and the full document
type RenderStep struct {
	renderer *report.Renderer
	page     *report.Page
	now      func() time.Time
}

func NewRenderStep(renderer *report.Renderer, page *report.Page, now func() time.Time) *RenderStep {
	if now == nil {
		now = time.Now
	}
	return &RenderStep{renderer: renderer, page: page, now: now}
}

func (s *RenderStep) ID() string   { return StepRender }
func (s *RenderStep) Name() string { return "Render report" }

func (s *RenderStep) Execute(ctx context.Context, state *RunState) error {
	charts, err := s.renderer.Render(ctx, state.Summaries.Tables)
	if err != nil {
		return err
	}

	document, err := s.page.Render(state.KPIs, charts, s.now())
	if err != nil {
		return err
	}

	state.Charts = charts
	state.Document = document
	return nil
}

// WriteStep replaces the output file with the rendered document
type WriteStep struct {
	writer *exporter.HTMLWriter
}

func NewWriteStep(writer *exporter.HTMLWriter) *WriteStep {
	return &WriteStep{writer: writer}
}

func (s *WriteStep) ID() string   { return StepWrite }
func (s *WriteStep) Name() string { return "Write report" }

func (s *WriteStep) Execute(ctx context.Context, state *RunState) error {
	if len(state.Document) == 0 {
		return fmt.Errorf("no document rendered")
	}
	return s.writer.Write(ctx, state.OutputPath, state.Document)
}
