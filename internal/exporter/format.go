package exporter

import (
	"strconv"
)

// formatValue writes a summed value with the shortest exact representation
func formatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
