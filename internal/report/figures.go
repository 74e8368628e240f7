package report

import (
	"fmt"

	grob "github.com/MetalBlueberry/go-plotly/generated/v2.34.0/graph_objects"
	"github.com/MetalBlueberry/go-plotly/pkg/types"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// ChartKind is the visual form of a chart
type ChartKind string

const (
	KindLine          ChartKind = "line"
	KindHorizontalBar ChartKind = "hbar"
	KindDonut         ChartKind = "donut"
)

// donutHole is the inner radius of the payment donut
const donutHole = 0.35

// ChartSpec fixes how one summary table is drawn
type ChartSpec struct {
	Kind   ChartKind
	Title  string
	XTitle string
	YTitle string
}

var chartSpecs = map[domain.SummaryKey]ChartSpec{
	domain.SummaryTrend:        {Kind: KindLine, Title: "Sales Trend by Month (after_discount)", XTitle: "", YTitle: "Sales (after discount)"},
	domain.SummaryCategory:     {Kind: KindHorizontalBar, Title: "Top Categories by Sales", XTitle: "Sales", YTitle: "Category"},
	domain.SummaryPayment:      {Kind: KindDonut, Title: "Sales by Payment Method"},
	domain.SummaryTopProducts:  {Kind: KindHorizontalBar, Title: "Top 10 Products by Sales", XTitle: "Sales", YTitle: "Product"},
	domain.SummaryTopCustomers: {Kind: KindHorizontalBar, Title: "Top 10 Customers by Sales", XTitle: "Sales", YTitle: "Customer ID"},
}

// SpecFor returns the chart spec of a summary key
func SpecFor(key domain.SummaryKey) (ChartSpec, bool) {
	spec, ok := chartSpecs[key]
	return spec, ok
}

// templateLayout is the subset of layout attributes carried by the template
type templateLayout struct {
	PaperBGColor string   `json:"paper_bgcolor"`
	PlotBGColor  string   `json:"plot_bgcolor"`
	Font         fontSpec `json:"font"`
	Colorway     []string `json:"colorway"`
}

type fontSpec struct {
	Color string `json:"color,omitempty"`
}

type layoutTemplate struct {
	Layout templateLayout `json:"layout"`
}

// darkTemplate approximates plotly_dark
var darkTemplate = layoutTemplate{Layout: templateLayout{
	PaperBGColor: "rgb(17,17,17)",
	PlotBGColor:  "rgb(17,17,17)",
	Font:         fontSpec{Color: "#f2f5fa"},
	Colorway: []string{
		"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
		"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
	},
}}

// NewFigure builds the Plotly figure for a summary table
func NewFigure(table domain.SummaryTable) (*grob.Fig, error) {
	spec, ok := SpecFor(table.Key)
	if !ok {
		return nil, fmt.Errorf("no chart defined for summary %q", table.Key)
	}

	labels := table.Labels()
	values := table.Values()

	fig := &grob.Fig{
		Layout: &grob.Layout{
			Title:    &grob.LayoutTitle{Text: types.S(spec.Title)},
			Template: darkTemplate,
		},
		Config: &grob.Config{
			Displaylogo: types.False,
			Responsive:  types.True,
		},
	}

	switch spec.Kind {
	case KindLine:
		fig.Data = []types.Trace{&grob.Scatter{
			Type: grob.TraceTypeScatter,
			Mode: grob.ScatterModeLines + "+" + grob.ScatterModeMarkers,
			X:    types.DataArray(labels),
			Y:    types.DataArray(values),
		}}
	case KindHorizontalBar:
		fig.Data = []types.Trace{&grob.Bar{
			Type:        grob.TraceTypeBar,
			Orientation: grob.BarOrientationH,
			X:           types.DataArray(values),
			Y:           types.DataArray(labels),
		}}
	case KindDonut:
		fig.Data = []types.Trace{&grob.Pie{
			Type:   grob.TraceTypePie,
			Labels: types.DataArray(labels),
			Values: types.DataArray(values),
			Hole:   types.N(donutHole),
		}}
	}

	if spec.Kind != KindDonut {
		fig.Layout.Xaxis = &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: types.S(spec.XTitle)}}
		fig.Layout.Yaxis = &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: types.S(spec.YTitle)}}
	}

	return fig, nil
}
