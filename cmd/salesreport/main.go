package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/config"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/infrastructure"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/operations"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts"
)

// options are the command-line overrides applied on top of the loaded config
type options struct {
	configFile string
	input      string
	output     string
	sheet      string
	csvDir     string
	pdf        string
	fallback   bool
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet(config.ServiceName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configFile, "config", "", "YAML config file (defaults to report.yaml or configs/report.yaml if present)")
	fs.StringVar(&opts.input, "in", "", "input workbook (default "+config.DefaultInputPath+")")
	fs.StringVar(&opts.output, "out", "", "output HTML file (default "+config.DefaultOutputPath+")")
	fs.StringVar(&opts.sheet, "sheet", "", "preferred worksheet name (default "+config.DefaultSheetHint+")")
	fs.StringVar(&opts.csvDir, "csv-dir", "", "also write one CSV per summary table into this directory")
	fs.StringVar(&opts.pdf, "pdf", "", "also print the report to this PDF file via headless Chrome")
	fs.BoolVar(&opts.fallback, "static-fallback", false, "embed static SVG charts for readers without JavaScript")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// loadConfig loads the config and applies the flag overrides
func loadConfig(opts *options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configFile != "" {
		cfg, err = config.LoadFile(opts.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}

	if opts.input != "" {
		cfg.Input.Path = opts.input
	}
	if opts.output != "" {
		cfg.Output.HTMLPath = opts.output
	}
	if opts.sheet != "" {
		cfg.Input.SheetHint = opts.sheet
	}
	if opts.csvDir != "" {
		cfg.Output.SummaryCSVDir = opts.csvDir
	}
	if opts.pdf != "" {
		cfg.Output.PDFPath = opts.pdf
	}
	if opts.fallback {
		cfg.Output.StaticFallback = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError("config validation failed", err)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	tracing, err := infrastructure.InitTracing(cfg.Telemetry, stderr)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	runner := operations.NewRunner(cfg,
		operations.WithLogger(logger),
		operations.WithTracer(tracing.Tracer),
		operations.WithMetrics(infrastructure.NewRunMetrics()),
		operations.WithConsole(stdout),
	)

	_, err = runner.Run(ctx)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
