// Package operations runs the sales report pipeline.
//
// A run is four steps executed in order against a shared RunState:
//
//	load      read the workbook into a record table
//	aggregate compute the KPIs and the summary tables
//	render    build the chart fragments and the full HTML document
//	write     replace the output file with the document
//
// Each step gets its own span and stage metrics. A failing step is wrapped
// in an OperationError naming the step and stops the run, so the output
// file is never touched unless every earlier step succeeded. Summary CSVs,
// the PDF copy and the metrics textfile are optional extras whose failures
// are only logged.
//
// Example usage:
//
//	runner := operations.NewRunner(cfg,
//		operations.WithLogger(logger),
//		operations.WithConsole(os.Stdout),
//	)
//	result, err := runner.Run(ctx)
package operations
