// Package config provides centralized configuration management for the
// sales report generator.
//
// # Configuration Sources
//
// Configuration is layered in the following order, later sources winning:
//
//  1. Built-in defaults (Default)
//  2. An optional YAML file (report.yaml, configs/report.yaml, or $SALES_CONFIG_FILE)
//  3. Environment variables with the SALES_ prefix
//
// With no file and no variables a run uses the defaults only, which
// reproduce the fixed constants of the report: input tokopedia.xlsx, sheet
// hint "df", output index.html.
//
// # Environment Variables
//
// Nested fields join their names with underscores:
//
//	SALES_INPUT_PATH=data/sales.xlsx
//	SALES_INPUT_SHEET_HINT=df
//	SALES_OUTPUT_HTML_PATH=public/index.html
//	SALES_OUTPUT_SUMMARY_CSV_DIR=out/summaries
//	SALES_LOGGING_LEVEL=debug
//	SALES_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Validation
//
// Load validates the merged result with validator struct tags; an invalid
// level, exporter or URL fails the run before any file is read.
package config
