package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// Config represents the complete application configuration.
// Fields carry no envconfig tags so lookups never fall back to unprefixed
// variables such as PATH or LANG.
type Config struct {
	Input     InputConfig     `yaml:"input" split_words:"true"`
	Output    OutputConfig    `yaml:"output" split_words:"true"`
	Report    ReportConfig    `yaml:"report" split_words:"true"`
	Logging   LoggingConfig   `yaml:"logging" split_words:"true"`
	Telemetry TelemetryConfig `yaml:"telemetry" split_words:"true"`
}

// InputConfig locates the source workbook
type InputConfig struct {
	Path      string `yaml:"path" split_words:"true" validate:"required"`
	SheetHint string `yaml:"sheet_hint" split_words:"true"`
}

// OutputConfig controls what the run writes
type OutputConfig struct {
	HTMLPath       string        `yaml:"html_path" split_words:"true" validate:"required"`
	SummaryCSVDir  string        `yaml:"summary_csv_dir" split_words:"true"`
	StaticFallback bool          `yaml:"static_fallback" split_words:"true"`
	PDFPath        string        `yaml:"pdf_path" split_words:"true"`
	PDFTimeout     time.Duration `yaml:"pdf_timeout" split_words:"true" validate:"gt=0"`
}

// ReportConfig holds every literal rendered into the document
type ReportConfig struct {
	Title           string        `yaml:"title" split_words:"true" validate:"required"`
	Lang            string        `yaml:"lang" split_words:"true" validate:"required"`
	AuthorNameLabel string        `yaml:"author_name_label" split_words:"true"`
	AuthorName      string        `yaml:"author_name" split_words:"true"`
	AuthorIDLabel   string        `yaml:"author_id_label" split_words:"true"`
	AuthorID        string        `yaml:"author_id" split_words:"true"`
	Course          string        `yaml:"course" split_words:"true"`
	Footer          string        `yaml:"footer" split_words:"true"`
	CurrencyPrefix  string        `yaml:"currency_prefix" split_words:"true"`
	TimestampLayout string        `yaml:"timestamp_layout" split_words:"true" validate:"required"`
	PlotlyURL       string        `yaml:"plotly_url" split_words:"true" validate:"required,url"`
	KPILabels       KPILabels     `yaml:"kpi_labels" split_words:"true"`
	Sections        SectionTitles `yaml:"sections" split_words:"true"`
}

// KPILabels are the captions of the four KPI cards
type KPILabels struct {
	TotalSales      string `yaml:"total_sales" split_words:"true" validate:"required"`
	TotalOrders     string `yaml:"total_orders" split_words:"true" validate:"required"`
	UniqueCustomers string `yaml:"unique_customers" split_words:"true" validate:"required"`
	AOV             string `yaml:"aov" split_words:"true" validate:"required"`
}

// SectionTitles are the headings of the chart cards
type SectionTitles struct {
	Trend        string `yaml:"trend" split_words:"true" validate:"required"`
	Category     string `yaml:"category" split_words:"true" validate:"required"`
	Payment      string `yaml:"payment" split_words:"true" validate:"required"`
	TopProducts  string `yaml:"top_products" split_words:"true" validate:"required"`
	TopCustomers string `yaml:"top_customers" split_words:"true" validate:"required"`
}

// Title returns the card heading for a summary key
func (s SectionTitles) Title(key domain.SummaryKey) string {
	switch key {
	case domain.SummaryTrend:
		return s.Trend
	case domain.SummaryCategory:
		return s.Category
	case domain.SummaryPayment:
		return s.Payment
	case domain.SummaryTopProducts:
		return s.TopProducts
	case domain.SummaryTopCustomers:
		return s.TopCustomers
	default:
		return string(key)
	}
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" split_words:"true" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" split_words:"true" validate:"oneof=json text"`
	Output   string `yaml:"output" split_words:"true" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" split_words:"true"`
}

// TelemetryConfig contains tracing and run metrics configuration
type TelemetryConfig struct {
	TraceExporter string `yaml:"trace_exporter" split_words:"true" validate:"oneof=none stdout"`
	MetricsFile   string `yaml:"metrics_file" split_words:"true"`
}

// Load builds the configuration from defaults, an optional YAML file and
// SALES_* environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	return LoadFile(getConfigFilePath())
}

// LoadFile is Load with an explicit YAML file; an empty path skips the file layer
func LoadFile(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Fields without a matching variable are left untouched
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML values onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks struct constraints and cross-field rules
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging output %q requires a file path", c.Logging.Output)
	}

	return nil
}

// getConfigFilePath returns the path to the config file, or "" if none exists
func getConfigFilePath() string {
	if explicit := os.Getenv(ConfigFileEnv); explicit != "" {
		return explicit
	}

	locations := []string{
		"report.yaml",
		"configs/report.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns the built-in configuration. A run with no file and no
// environment overrides uses exactly these values.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path:      DefaultInputPath,
			SheetHint: DefaultSheetHint,
		},
		Output: OutputConfig{
			HTMLPath:   DefaultOutputPath,
			PDFTimeout: DefaultPDFTimeout,
		},
		Report: ReportConfig{
			Title:           "TOKOPEDIA",
			Lang:            "en",
			AuthorNameLabel: "Nama",
			AuthorName:      "Triana Revana Sirumpa",
			AuthorIDLabel:   "NPM",
			AuthorID:        "230712628",
			Course:          "UTS Visualisasi dan Interpretasi Data",
			Footer:          "All charts are interactive (Plotly). Desain: clarity → hierarchy → storytelling.",
			CurrencyPrefix:  DefaultCurrencyPrefix,
			TimestampLayout: DefaultTimestampLayout,
			PlotlyURL:       DefaultPlotlyURL,
			KPILabels: KPILabels{
				TotalSales:      "Total Sales",
				TotalOrders:     "Total Orders",
				UniqueCustomers: "Unique Customers",
				AOV:             "AOV",
			},
			Sections: SectionTitles{
				Trend:        "Tren Penjualan Bulanan",
				Category:     "Top Kategori",
				Payment:      "Porsi Metode Pembayaran",
				TopProducts:  "Top 10 Produk",
				TopCustomers: "Top 10 Pelanggan",
			},
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogPath,
		},
		Telemetry: TelemetryConfig{
			TraceExporter: DefaultTraceExporter,
		},
	}
}
