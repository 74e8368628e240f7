// Package report renders summary tables as Plotly charts and assembles the
// static HTML page around them.
package report
