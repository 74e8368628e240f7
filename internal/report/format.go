package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberFormatter renders KPI values with thousands separators
type NumberFormatter struct {
	printer  *message.Printer
	currency string
}

// NewNumberFormatter creates a formatter for tag. currencyPrefix is put in
// front of monetary values as is.
func NewNumberFormatter(tag language.Tag, currencyPrefix string) *NumberFormatter {
	return &NumberFormatter{
		printer:  message.NewPrinter(tag),
		currency: currencyPrefix,
	}
}

// Money formats v rounded to whole units, e.g. "$1,234,568"
func (f *NumberFormatter) Money(v float64) string {
	return f.currency + f.printer.Sprintf("%.0f", v)
}

// Count formats an integer, e.g. "12,345"
func (f *NumberFormatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}
