package domain

// Recognized column names of the sales sheet
const (
	ColOrderDate      = "order_date"
	ColYear           = "year"
	ColMonth          = "month"
	ColYearMonth      = "ym"
	ColBeforeDiscount = "before_discount"
	ColDiscountAmount = "discount_amount"
	ColAfterDiscount  = "after_discount"
	ColPrice          = "price"
	ColQtyOrdered     = "qty_ordered"
	ColCOGS           = "cogs"
	ColPaymentMethod  = "payment_method"
	ColCategory       = "category"
	ColSKUName        = "sku_name"
	ColCustomerID     = "customer_id"
	ColRegion         = "region"
	ColIsValid        = "is_valid"
)

// NumericColumns are parsed to numbers; unparseable cells become missing.
var NumericColumns = []string{
	ColBeforeDiscount, ColDiscountAmount, ColAfterDiscount,
	ColPrice, ColQtyOrdered, ColCOGS,
}

// TextColumns are coerced to their string representation.
var TextColumns = []string{
	ColPaymentMethod, ColCategory, ColSKUName,
	ColCustomerID, ColRegion, ColIsValid,
}

// SummaryKey identifies one summary table and the chart card built from it
type SummaryKey string

const (
	SummaryTrend        SummaryKey = "trend"
	SummaryCategory     SummaryKey = "category"
	SummaryPayment      SummaryKey = "payment"
	SummaryTopProducts  SummaryKey = "top_products"
	SummaryTopCustomers SummaryKey = "top_customers"
)

// SummaryOrder is the fixed card order of the report.
var SummaryOrder = []SummaryKey{
	SummaryTrend, SummaryCategory, SummaryPayment,
	SummaryTopProducts, SummaryTopCustomers,
}

// KPISet holds the four headline metrics of the report
type KPISet struct {
	TotalSales        float64 `json:"total_sales"`
	TotalOrders       int     `json:"total_orders"`
	UniqueCustomers   int     `json:"unique_customers"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// SummaryRow is one group of a summary table
type SummaryRow struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SummaryTable is a grouped and aggregated projection of the record table
type SummaryTable struct {
	Key         SummaryKey   `json:"key"`
	GroupColumn string       `json:"group_column"`
	ValueColumn string       `json:"value_column"`
	Rows        []SummaryRow `json:"rows"`
}

// Labels returns the group labels in table order
func (t SummaryTable) Labels() []string {
	labels := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		labels[i] = r.Label
	}
	return labels
}

// Values returns the summed metric in table order
func (t SummaryTable) Values() []float64 {
	values := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		values[i] = r.Value
	}
	return values
}

// SkippedSummary records a summary table that could not be built
type SkippedSummary struct {
	Key            SummaryKey `json:"key"`
	MissingColumns []string   `json:"missing_columns"`
}
