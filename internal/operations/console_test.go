package operations

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

func TestConsole_KPIs(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, "$").KPIs(domain.KPISet{
		TotalSales:        1234567.5,
		TotalOrders:       12345,
		UniqueCustomers:   678,
		AverageOrderValue: 100.01,
	})

	want := "\n===== KPI =====\n" +
		"Total Sales (After Discount): $1,234,568\n" +
		"Total Orders               : 12,345\n" +
		"Unique Customers           : 678\n" +
		"Average Order Value (AOV)  : $100\n"
	assert.Equal(t, want, buf.String())
}

func TestConsole_Skipped(t *testing.T) {
	tests := []struct {
		name    string
		skipped domain.SkippedSummary
		want    string
	}{
		{
			name:    "missing columns",
			skipped: domain.SkippedSummary{Key: domain.SummaryTrend, MissingColumns: []string{"ym", "after_discount"}},
			want:    "Skipping trend: missing column(s) ym, after_discount\n",
		},
		{
			name:    "unusable types",
			skipped: domain.SkippedSummary{Key: domain.SummaryPayment},
			want:    "Skipping payment: columns have unusable types\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewConsole(&buf, "$").Skipped(tt.skipped)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsole_NilWriter(t *testing.T) {
	c := NewConsole(nil, "$")
	assert.NotPanics(t, func() {
		c.Loading("/tmp/sales.xlsx")
		c.Columns([]string{"a"})
		c.Done("/tmp/index.html")
	})
}
