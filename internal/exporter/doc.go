// Package exporter persists report output: the HTML document, optional
// per-summary CSV files and an optional PDF print of the page.
package exporter
