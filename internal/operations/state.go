package operations

import (
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/dataprocessing"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/report"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// RunState carries the products of each step to the next. Every field is
// set once by the step that produces it.
type RunState struct {
	RunID      string
	InputPath  string
	OutputPath string

	Table     *dataprocessing.Table
	KPIs      domain.KPISet
	Summaries dataprocessing.SummaryResult
	Charts    []report.Chart
	Document  []byte
}
