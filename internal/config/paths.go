package config

import (
	"fmt"
	"path/filepath"
)

// Paths holds the resolved file locations of a single run
type Paths struct {
	InputFile     string
	OutputFile    string
	SummaryCSVDir string
	PDFFile       string
	MetricsFile   string
}

// ResolvePaths turns the configured paths into absolute ones.
// Relative paths resolve against the working directory; empty paths stay empty.
func (c *Config) ResolvePaths() (*Paths, error) {
	var paths Paths
	targets := []struct {
		src string
		dst *string
	}{
		{c.Input.Path, &paths.InputFile},
		{c.Output.HTMLPath, &paths.OutputFile},
		{c.Output.SummaryCSVDir, &paths.SummaryCSVDir},
		{c.Output.PDFPath, &paths.PDFFile},
		{c.Telemetry.MetricsFile, &paths.MetricsFile},
	}

	for _, t := range targets {
		resolved, err := ResolvePath(t.src)
		if err != nil {
			return nil, err
		}
		*t.dst = resolved
	}

	return &paths, nil
}

// ResolvePath returns the absolute form of path, or "" for an empty path
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}
