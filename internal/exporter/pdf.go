package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFExporter prints the written HTML report to PDF with headless Chrome
type PDFExporter struct {
	logger  *slog.Logger
	timeout time.Duration
	// settle is how long charts get to draw after the page has loaded
	settle time.Duration
}

// NewPDFExporter creates an exporter that gives up after timeout
func NewPDFExporter(logger *slog.Logger, timeout time.Duration) *PDFExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExporter{logger: logger, timeout: timeout, settle: 2 * time.Second}
}

// Export loads htmlPath in a headless browser and writes the printed page to pdfPath
func (e *PDFExporter) Export(ctx context.Context, htmlPath, pdfPath string) error {
	target, err := fileURL(htmlPath)
	if err != nil {
		return err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Flag("headless", true))
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, e.timeout)
	defer cancelRun()

	start := time.Now()
	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(e.settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to print %s: %w", htmlPath, err)
	}

	if dir := filepath.Dir(pdfPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	e.logger.InfoContext(ctx, "PDF exported",
		slog.String("path", pdfPath),
		slog.Int("bytes", len(pdf)),
		slog.Duration("duration", time.Since(start)))
	return nil
}

// fileURL turns a local path into an absolute file:// URL
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}
