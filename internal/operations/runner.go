package operations

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/config"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/dataprocessing"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/exporter"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/infrastructure"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/report"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// RunResult summarizes a finished run
type RunResult struct {
	RunID       string
	Paths       config.Paths
	KPIs        domain.KPISet
	Tables      []domain.SummaryTable
	Skipped     []domain.SkippedSummary
	Charts      int
	SummaryCSVs []string
	PDFFile     string
	Duration    time.Duration
}

// Runner executes the report steps in order
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	tracer  *StageTracer
	metrics *infrastructure.RunMetrics
	console *Console
	now     func() time.Time
	steps   func(paths *config.Paths) ([]Step, error)
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer sets the tracer used for run and step spans
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Runner) {
		r.tracer = NewStageTracer(tracer)
	}
}

// WithMetrics sets the collector for run metrics
func WithMetrics(metrics *infrastructure.RunMetrics) Option {
	return func(r *Runner) {
		if metrics != nil {
			r.metrics = metrics
		}
	}
}

// WithConsole sets where progress lines are printed
func WithConsole(w io.Writer) Option {
	return func(r *Runner) {
		r.console = NewConsole(w, r.cfg.Report.CurrencyPrefix)
	}
}

// WithClock sets the time source for the generated timestamp
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithSteps replaces the default step list. build receives the resolved
// paths of the run.
func WithSteps(build func(paths *config.Paths) ([]Step, error)) Option {
	return func(r *Runner) {
		if build != nil {
			r.steps = build
		}
	}
}

// NewRunner creates a Runner for cfg
func NewRunner(cfg *config.Config, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	r := &Runner{
		cfg:     cfg,
		logger:  slog.Default(),
		tracer:  NewStageTracer(nil),
		metrics: infrastructure.NewRunMetrics(),
		now:     time.Now,
	}
	r.console = NewConsole(nil, cfg.Report.CurrencyPrefix)
	for _, opt := range opts {
		opt(r)
	}
	if r.steps == nil {
		r.steps = r.DefaultSteps
	}
	return r
}

// DefaultSteps builds load, aggregate, render and write for paths
func (r *Runner) DefaultSteps(paths *config.Paths) ([]Step, error) {
	page, err := report.NewPage(r.cfg.Report)
	if err != nil {
		return nil, err
	}

	summarizer := dataprocessing.NewSummarizer(
		infrastructure.WithComponent(r.logger, "summarizer"),
		dataprocessing.SummarizerConfig{},
	)
	renderer := report.NewRenderer(
		infrastructure.WithComponent(r.logger, "renderer"),
		report.RenderOptions{StaticFallback: r.cfg.Output.StaticFallback},
	)

	return []Step{
		NewLoadStep(dataprocessing.NewLoader(
			infrastructure.WithComponent(r.logger, "loader"),
			dataprocessing.LoadOptions{SheetHint: r.cfg.Input.SheetHint},
		)),
		NewAggregateStep(summarizer),
		NewRenderStep(renderer, page, r.now),
		NewWriteStep(exporter.NewHTMLWriter(infrastructure.WithComponent(r.logger, "writer"))),
	}, nil
}

// Run executes every step in order. A failing step stops the run before
// any later step; the output file is only touched by the write step.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	started := time.Now()
	ctx = infrastructure.EnsureRunID(ctx)
	runID := infrastructure.GetRunID(ctx)

	paths, err := r.cfg.ResolvePaths()
	if err != nil {
		return nil, NewValidationError("configure", "failed to resolve paths", errors.NewConfigError("invalid path", err))
	}

	ctx, span := r.tracer.TraceRun(ctx, runID, paths.InputFile)
	var runErr error
	defer func() {
		r.tracer.RecordResult(span, runErr, time.Since(started))
	}()

	defer r.writeMetrics(ctx, paths.MetricsFile)

	steps, err := r.steps(paths)
	if err != nil {
		runErr = NewValidationError("configure", "failed to prepare steps", err)
		return nil, runErr
	}

	r.logger.InfoContext(ctx, "Report run started",
		slog.String("input", paths.InputFile),
		slog.String("output", paths.OutputFile),
		slog.Int("steps", len(steps)))

	r.console.Loading(paths.InputFile)

	state := &RunState{
		RunID:      runID,
		InputPath:  paths.InputFile,
		OutputPath: paths.OutputFile,
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			runErr = WrapError(step.ID(), err)
			return nil, runErr
		}
		if err := r.executeStep(ctx, runID, step, state); err != nil {
			runErr = err
			return nil, runErr
		}
	}

	result := &RunResult{
		RunID:   runID,
		Paths:   *paths,
		KPIs:    state.KPIs,
		Tables:  state.Summaries.Tables,
		Skipped: state.Summaries.Skipped,
		Charts:  len(state.Charts),
	}

	result.SummaryCSVs = r.exportSummaries(ctx, paths.SummaryCSVDir, state.Summaries.Tables)
	result.PDFFile = r.exportPDF(ctx, paths.OutputFile, paths.PDFFile)

	r.console.Done(paths.OutputFile)
	r.metrics.MarkSuccess(r.now())

	result.Duration = time.Since(started)
	r.logger.InfoContext(ctx, "Report run completed",
		slog.String("output", paths.OutputFile),
		slog.Int("charts", result.Charts),
		slog.Duration("duration", result.Duration))

	return result, nil
}

func (r *Runner) executeStep(ctx context.Context, runID string, step Step, state *RunState) error {
	stepCtx, span := r.tracer.TraceStep(ctx, runID, step.ID())
	start := time.Now()

	r.logger.DebugContext(stepCtx, "Step started",
		slog.String("step", step.ID()),
		slog.String("name", step.Name()))

	err := step.Execute(stepCtx, state)
	elapsed := time.Since(start)

	r.tracer.RecordResult(span, err, elapsed)
	r.metrics.ObserveStage(step.ID(), elapsed, err)

	if err != nil {
		wrapped := WrapError(step.ID(), err)
		infrastructure.WithError(r.logger, err).ErrorContext(stepCtx, "Step failed",
			slog.String("step", step.ID()),
			slog.String("error_type", string(GetErrorType(wrapped))),
			slog.Duration("duration", elapsed))
		return wrapped
	}

	r.logger.InfoContext(stepCtx, "Step completed",
		slog.String("step", step.ID()),
		slog.Duration("duration", elapsed))

	r.report(step.ID(), state)
	return nil
}

// report prints and records what a finished step produced
func (r *Runner) report(stepID string, state *RunState) {
	switch stepID {
	case StepLoad:
		if state.Table == nil {
			return
		}
		r.console.Columns(state.Table.Names())
		r.metrics.RowsLoaded.Set(float64(state.Table.Len()))
		r.metrics.ColumnsDetected.Set(float64(len(state.Table.Names())))

	case StepAggregate:
		r.console.KPIs(state.KPIs)
		for _, s := range state.Summaries.Skipped {
			r.console.Skipped(s)
			r.metrics.SummariesSkipped.WithLabelValues(string(s.Key)).Inc()
		}
		r.metrics.SummariesBuilt.Set(float64(len(state.Summaries.Tables)))
	}
}

func (r *Runner) exportSummaries(ctx context.Context, dir string, tables []domain.SummaryTable) []string {
	if dir == "" {
		return nil
	}
	writer := exporter.NewCSVWriter(infrastructure.WithComponent(r.logger, "csv"), dir)
	files, err := writer.WriteSummaries(ctx, tables)
	if err != nil {
		infrastructure.WithError(r.logger, err).WarnContext(ctx, "Summary CSV export failed",
			slog.String("dir", dir))
	}
	return files
}

func (r *Runner) exportPDF(ctx context.Context, htmlPath, pdfPath string) string {
	if pdfPath == "" {
		return ""
	}
	pdf := exporter.NewPDFExporter(infrastructure.WithComponent(r.logger, "pdf"), r.cfg.Output.PDFTimeout)
	if err := pdf.Export(ctx, htmlPath, pdfPath); err != nil {
		infrastructure.WithError(r.logger, err).WarnContext(ctx, "PDF export failed, HTML report kept",
			slog.String("pdf", pdfPath))
		return ""
	}
	return pdfPath
}

func (r *Runner) writeMetrics(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := r.metrics.WriteTextfile(path); err != nil {
		infrastructure.WithError(r.logger, err).WarnContext(ctx, "Metrics file not written",
			slog.String("path", path))
	}
}
