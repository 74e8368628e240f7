// Package dataprocessing turns a sales workbook into the figures of the report.
//
// The Loader reads one worksheet with excelize into a Table backed by a gota
// DataFrame, coercing the recognized numeric, text and date columns.
// ComputeKPIs derives the headline metrics and the Summarizer runs one
// SummaryBuilder per report card; a builder whose required columns are
// absent is skipped and reported instead of failing the run.
//
//	table, err := dataprocessing.NewLoader(logger, dataprocessing.LoadOptions{SheetHint: "df"}).Load(ctx, path)
//	if err != nil {
//	    return err
//	}
//	kpis := dataprocessing.ComputeKPIs(table)
//	result := dataprocessing.NewSummarizer(logger, dataprocessing.SummarizerConfig{}).Build(ctx, table)
//
// Sums use exact decimal arithmetic so totals do not depend on row order.
package dataprocessing
