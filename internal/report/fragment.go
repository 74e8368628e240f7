package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	grob "github.com/MetalBlueberry/go-plotly/generated/v2.34.0/graph_objects"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// fragmentTemplate mirrors the div plus newPlot script that Plotly emits for
// a figure without the runtime bundle.
var fragmentTemplate = template.Must(template.New("fragment").Parse(
	`<div id="{{.ID}}" class="plotly-graph-div" style="height:100%; width:100%;"></div>` +
		`<script type="text/javascript">` +
		`window.PLOTLYENV=window.PLOTLYENV || {};` +
		`if (document.getElementById("{{.ID}}")) {` +
		` Plotly.newPlot("{{.ID}}", {{.Data}}, {{.Layout}}, {{.Config}});` +
		` }` +
		`</script>`))

// ElementID derives the DOM id of a chart from its key. It does not vary
// between runs.
func ElementID(key domain.SummaryKey) string {
	return "chart-" + string(key)
}

// Fragment serializes fig into an embeddable div and script. The JSON
// encoder escapes <, > and & so table labels cannot close the script.
func Fragment(id string, fig *grob.Fig) (string, error) {
	if fig == nil {
		return "", fmt.Errorf("no figure to encode")
	}
	data, err := json.Marshal(fig.Data)
	if err != nil {
		return "", fmt.Errorf("failed to encode traces: %w", err)
	}
	layout, err := json.Marshal(fig.Layout)
	if err != nil {
		return "", fmt.Errorf("failed to encode layout: %w", err)
	}
	config, err := json.Marshal(fig.Config)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	var buf bytes.Buffer
	err = fragmentTemplate.Execute(&buf, struct {
		ID                   string
		Data, Layout, Config string
	}{id, string(data), string(layout), string(config)})
	if err != nil {
		return "", fmt.Errorf("failed to render chart fragment: %w", err)
	}
	return buf.String(), nil
}
