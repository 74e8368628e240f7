package config

import (
	"time"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts"
)

// Application constants
const (
	// Application Info
	AppName    = "Sales Pulse"
	AppVersion = contracts.Version

	// Environment
	EnvPrefix     = "SALES"
	ConfigFileEnv = "SALES_CONFIG_FILE"

	// Input
	DefaultInputPath = "tokopedia.xlsx"
	DefaultSheetHint = "df"

	// Output (relative to the working directory)
	DefaultOutputPath = "index.html"
	DefaultLogPath    = "logs/salesreport.log"
	DefaultPDFTimeout = 60 * time.Second

	// Charting runtime, loaded once per document
	DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.32.0.min.js"

	// Report layout
	DefaultTimestampLayout = "2006-01-02 15:04"
	DefaultCurrencyPrefix  = "$"

	// Summary caps
	CategoryLimit     = 12
	TopProductsLimit  = 10
	TopCustomersLimit = 10

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "console"

	// Telemetry
	DefaultTraceExporter = "none"
	ServiceName          = "salesreport"
)
