package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryTable_LabelsAndValues(t *testing.T) {
	table := SummaryTable{
		Key: SummaryCategory,
		Rows: []SummaryRow{
			{Label: "Mobiles", Value: 300},
			{Label: "Books", Value: 120.5},
		},
	}

	assert.Equal(t, []string{"Mobiles", "Books"}, table.Labels())
	assert.Equal(t, []float64{300, 120.5}, table.Values())
}

func TestSummaryTable_Empty(t *testing.T) {
	var table SummaryTable

	assert.Empty(t, table.Labels())
	assert.Empty(t, table.Values())
}

func TestSummaryOrder(t *testing.T) {
	assert.Equal(t, []SummaryKey{
		SummaryTrend, SummaryCategory, SummaryPayment,
		SummaryTopProducts, SummaryTopCustomers,
	}, SummaryOrder)
}
