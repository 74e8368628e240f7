package operations

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/report"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// Console prints the human-readable progress lines of a run
type Console struct {
	w      io.Writer
	format *report.NumberFormatter
}

// NewConsole creates a Console writing to w; a nil writer discards output
func NewConsole(w io.Writer, currencyPrefix string) *Console {
	if w == nil {
		w = io.Discard
	}
	return &Console{w: w, format: report.NewNumberFormatter(language.English, currencyPrefix)}
}

func (c *Console) Loading(path string) {
	fmt.Fprintf(c.w, "Loading: %s\n", path)
}

func (c *Console) Columns(columns []string) {
	fmt.Fprintf(c.w, "Columns available: [%s]\n", strings.Join(columns, ", "))
}

func (c *Console) KPIs(k domain.KPISet) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, "===== KPI =====")
	fmt.Fprintf(c.w, "Total Sales (After Discount): %s\n", c.format.Money(k.TotalSales))
	fmt.Fprintf(c.w, "Total Orders               : %s\n", c.format.Count(k.TotalOrders))
	fmt.Fprintf(c.w, "Unique Customers           : %s\n", c.format.Count(k.UniqueCustomers))
	fmt.Fprintf(c.w, "Average Order Value (AOV)  : %s\n", c.format.Money(k.AverageOrderValue))
}

func (c *Console) Skipped(s domain.SkippedSummary) {
	if len(s.MissingColumns) == 0 {
		fmt.Fprintf(c.w, "Skipping %s: columns have unusable types\n", s.Key)
		return
	}
	fmt.Fprintf(c.w, "Skipping %s: missing column(s) %s\n", s.Key, strings.Join(s.MissingColumns, ", "))
}

func (c *Console) Done(path string) {
	fmt.Fprintf(c.w, "Done: 1 HTML page written to %s\n", path)
}
