// Package shared holds helpers used across packages that belong to no
// single layer.
//
// The testutil subpackage provides the test fixtures: a slog handler that
// captures records for assertions, and a writer that saves synthetic sales
// workbooks with excelize.
package shared
