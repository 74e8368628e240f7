package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

func TestStaticSVG(t *testing.T) {
	for _, key := range domain.SummaryOrder {
		t.Run(string(key), func(t *testing.T) {
			svg, err := StaticSVG(sampleTable(key))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(svg), "<svg"))
			assert.Contains(t, string(svg), "</svg>")
		})
	}
}

func TestStaticSVG_SinglePointTrend(t *testing.T) {
	table := domain.SummaryTable{
		Key:  domain.SummaryTrend,
		Rows: []domain.SummaryRow{{Label: "2024-01", Value: 10}},
	}

	svg, err := StaticSVG(table)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestStaticSVG_Errors(t *testing.T) {
	tests := []struct {
		name  string
		table domain.SummaryTable
	}{
		{"no rows", domain.SummaryTable{Key: domain.SummaryCategory}},
		{"unknown key", domain.SummaryTable{Key: "region", Rows: []domain.SummaryRow{{Label: "a", Value: 1}}}},
		{"all zero bars", domain.SummaryTable{Key: domain.SummaryCategory, Rows: []domain.SummaryRow{{Label: "a"}, {Label: "b"}}}},
		{"no positive slices", domain.SummaryTable{Key: domain.SummaryPayment, Rows: []domain.SummaryRow{{Label: "a"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StaticSVG(tt.table)
			assert.Error(t, err)
		})
	}
}
