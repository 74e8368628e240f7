package dataprocessing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// ComputeKPIs derives the headline metrics of the report. Each metric falls
// back to zero on its own when its column is absent.
func ComputeKPIs(t *Table) domain.KPISet {
	kpis := domain.KPISet{TotalOrders: t.Len()}

	if sales, ok := t.Floats(domain.ColAfterDiscount); ok {
		kpis.TotalSales = sumValues(sales).InexactFloat64()
	}

	if customers, ok := t.Strings(domain.ColCustomerID); ok {
		kpis.UniqueCustomers = countDistinct(customers)
	}

	orders := kpis.TotalOrders
	if orders < 1 {
		orders = 1
	}
	kpis.AverageOrderValue = kpis.TotalSales / float64(orders)

	return kpis
}

// sumValues adds the finite values exactly; NaN and infinities are skipped
func sumValues(values []float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
