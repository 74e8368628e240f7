package dataprocessing

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/config"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// SortOrder is how a summary table's rows are ordered
type SortOrder int

const (
	// ByValueDescending orders by summed value, largest first
	ByValueDescending SortOrder = iota
	// ByLabelAscending orders by group label
	ByLabelAscending
)

// SummaryBuilder declares one grouped summary of the record table.
// It is built only when every RequiredColumns entry is present.
type SummaryBuilder struct {
	Key         domain.SummaryKey
	GroupColumn string
	ValueColumn string
	Order       SortOrder
	Limit       int // 0 keeps every group
}

// RequiredColumns lists the columns the builder reads
func (b SummaryBuilder) RequiredColumns() []string {
	return []string{b.GroupColumn, b.ValueColumn}
}

// SummarizerConfig holds the row caps of the top-N tables
type SummarizerConfig struct {
	CategoryLimit     int
	TopProductsLimit  int
	TopCustomersLimit int
}

// SummaryResult holds the built tables in report order and the skipped ones
type SummaryResult struct {
	Tables  []domain.SummaryTable
	Skipped []domain.SkippedSummary
}

// Table returns the built table for key
func (r SummaryResult) Table(key domain.SummaryKey) (domain.SummaryTable, bool) {
	for _, t := range r.Tables {
		if t.Key == key {
			return t, true
		}
	}
	return domain.SummaryTable{}, false
}

// Summarizer runs the summary builders against a record table
type Summarizer struct {
	logger   *slog.Logger
	builders []SummaryBuilder
}

// NewSummarizer creates a summarizer with the report's five builders.
// Non-positive limits fall back to the built-in caps.
func NewSummarizer(logger *slog.Logger, cfg SummarizerConfig) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.CategoryLimit <= 0 {
		cfg.CategoryLimit = config.CategoryLimit
	}
	if cfg.TopProductsLimit <= 0 {
		cfg.TopProductsLimit = config.TopProductsLimit
	}
	if cfg.TopCustomersLimit <= 0 {
		cfg.TopCustomersLimit = config.TopCustomersLimit
	}

	return &Summarizer{
		logger:   logger,
		builders: DefaultBuilders(cfg),
	}
}

// DefaultBuilders returns the builders in report card order
func DefaultBuilders(cfg SummarizerConfig) []SummaryBuilder {
	return []SummaryBuilder{
		{Key: domain.SummaryTrend, GroupColumn: domain.ColYearMonth, ValueColumn: domain.ColAfterDiscount, Order: ByLabelAscending},
		{Key: domain.SummaryCategory, GroupColumn: domain.ColCategory, ValueColumn: domain.ColAfterDiscount, Limit: cfg.CategoryLimit},
		{Key: domain.SummaryPayment, GroupColumn: domain.ColPaymentMethod, ValueColumn: domain.ColAfterDiscount},
		{Key: domain.SummaryTopProducts, GroupColumn: domain.ColSKUName, ValueColumn: domain.ColAfterDiscount, Limit: cfg.TopProductsLimit},
		{Key: domain.SummaryTopCustomers, GroupColumn: domain.ColCustomerID, ValueColumn: domain.ColAfterDiscount, Limit: cfg.TopCustomersLimit},
	}
}

// Builders returns the configured builders
func (s *Summarizer) Builders() []SummaryBuilder {
	out := make([]SummaryBuilder, len(s.builders))
	copy(out, s.builders)
	return out
}

// BuildSummaries runs the default builders without logging
func BuildSummaries(t *Table) SummaryResult {
	return NewSummarizer(slog.New(slog.NewTextHandler(io.Discard, nil)), SummarizerConfig{}).Build(context.Background(), t)
}

// Build runs every builder whose columns are present. Missing columns skip
// that table only.
func (s *Summarizer) Build(ctx context.Context, t *Table) SummaryResult {
	var result SummaryResult

	for _, b := range s.builders {
		if missing := t.Missing(b.RequiredColumns()...); len(missing) > 0 {
			s.logger.WarnContext(ctx, "Skipping summary table",
				slog.String("key", string(b.Key)),
				slog.Any("missing_columns", missing))
			result.Skipped = append(result.Skipped, domain.SkippedSummary{Key: b.Key, MissingColumns: missing})
			continue
		}

		table, ok := b.build(t)
		if !ok {
			s.logger.WarnContext(ctx, "Skipping summary table with unusable column types",
				slog.String("key", string(b.Key)),
				slog.String("group_column", b.GroupColumn),
				slog.String("value_column", b.ValueColumn))
			result.Skipped = append(result.Skipped, domain.SkippedSummary{Key: b.Key})
			continue
		}

		s.logger.DebugContext(ctx, "Summary table built",
			slog.String("key", string(b.Key)),
			slog.Int("rows", len(table.Rows)))
		result.Tables = append(result.Tables, table)
	}

	return result
}

type group struct {
	label string
	sum   decimal.Decimal
}

// build groups by label, sums the value column and applies order and cap
func (b SummaryBuilder) build(t *Table) (domain.SummaryTable, bool) {
	labels, ok := t.Strings(b.GroupColumn)
	if !ok {
		return domain.SummaryTable{}, false
	}
	values, ok := t.Floats(b.ValueColumn)
	if !ok {
		return domain.SummaryTable{}, false
	}

	sums := make(map[string]decimal.Decimal)
	for i, label := range labels {
		// Rows without a parsed date get no trend bucket
		if label == "" && b.GroupColumn == domain.ColYearMonth {
			continue
		}
		sum := sums[label]
		if isFinite(values[i]) {
			sum = sum.Add(decimal.NewFromFloat(values[i]))
		}
		sums[label] = sum
	}

	groups := make([]group, 0, len(sums))
	for label, sum := range sums {
		groups = append(groups, group{label: label, sum: sum})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].label < groups[j].label })

	if b.Order == ByValueDescending {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].sum.GreaterThan(groups[j].sum)
		})
	}

	if b.Limit > 0 && len(groups) > b.Limit {
		groups = groups[:b.Limit]
	}

	table := domain.SummaryTable{
		Key:         b.Key,
		GroupColumn: b.GroupColumn,
		ValueColumn: b.ValueColumn,
		Rows:        make([]domain.SummaryRow, len(groups)),
	}
	for i, g := range groups {
		table.Rows[i] = domain.SummaryRow{Label: g.label, Value: g.sum.InexactFloat64()}
	}
	return table, true
}
