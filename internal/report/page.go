package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"golang.org/x/text/language"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/config"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

// KPICard is one formatted headline metric
type KPICard struct {
	Label string
	Value string
}

// Card is one chart section of the page
type Card struct {
	Heading  string
	Fragment template.HTML
	Fallback template.HTML
}

type pageData struct {
	Report    config.ReportConfig
	Generated string
	KPIs      []KPICard
	Cards     []Card
}

// Page renders the complete HTML document
type Page struct {
	cfg    config.ReportConfig
	format *NumberFormatter
	tmpl   *template.Template
}

// NewPage parses the document template for cfg
func NewPage(cfg config.ReportConfig) (*Page, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &Page{
		cfg:    cfg,
		format: NewNumberFormatter(language.English, cfg.CurrencyPrefix),
		tmpl:   tmpl,
	}, nil
}

// KPICards formats the metrics in display order
func (p *Page) KPICards(kpis domain.KPISet) []KPICard {
	labels := p.cfg.KPILabels
	return []KPICard{
		{Label: labels.TotalSales, Value: p.format.Money(kpis.TotalSales)},
		{Label: labels.TotalOrders, Value: p.format.Count(kpis.TotalOrders)},
		{Label: labels.UniqueCustomers, Value: p.format.Count(kpis.UniqueCustomers)},
		{Label: labels.AOV, Value: p.format.Money(kpis.AverageOrderValue)},
	}
}

// Render writes the whole document to memory. generated is shown in the
// configured timestamp layout in its own location.
func (p *Page) Render(kpis domain.KPISet, charts []Chart, generated time.Time) ([]byte, error) {
	cards := make([]Card, len(charts))
	for i, c := range charts {
		cards[i] = Card{
			Heading:  p.cfg.Sections.Title(c.Key),
			Fragment: c.Fragment,
			Fallback: c.Fallback,
		}
	}

	var buf bytes.Buffer
	err := p.tmpl.Execute(&buf, pageData{
		Report:    p.cfg,
		Generated: generated.Format(p.cfg.TimestampLayout),
		KPIs:      p.KPICards(kpis),
		Cards:     cards,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

const pageTemplate = `<!doctype html>
<html lang="{{.Report.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Report.Title}}</title>
<script src="{{.Report.PlotlyURL}}"></script>
<style>
  :root {
    --bg: #0f172a;
    --panel: #0b1229;
    --border: #1f2937;
    --text: #e5e7eb;
    --muted: #94a3b8;
    --accent: #93c5fd;
  }
  * { box-sizing: border-box; }
  body {
    margin: 0; background: var(--bg); color: var(--text);
    font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Ubuntu;
  }
  .container { max-width: 1200px; margin: 0 auto; padding: 24px 16px; }
  h1 { margin: 0 0 8px; font-size: 28px; }
  .sub { color: var(--accent); margin-bottom: 20px; }
  .author {
    margin-top: 4px;
    margin-bottom: 12px;
    color: var(--accent);
    font-size: 14px;
    line-height: 1.5;
  }
  .author p { margin: 2px 0; }
  .kpi-grid {
    display: grid; grid-template-columns: repeat(4,1fr); gap: 14px; margin-bottom: 18px;
  }
  .kpi {
    background: linear-gradient(135deg, #111827 0%, #0b1229 100%);
    border: 1px solid var(--border); border-radius: 16px; padding: 14px 16px;
    box-shadow: 0 10px 30px rgba(0,0,0,.25);
  }
  .kpi-label { font-size: 12px; color: var(--accent); }
  .kpi-value { font-size: 22px; font-weight: 700; color: #f8fafc; }
  .card {
    background: var(--panel); border: 1px solid var(--border); border-radius: 16px;
    padding: 16px; margin: 18px 0;
  }
  .card svg { max-width: 100%; height: auto; }
  h2 { margin:0 0 10px; font-size: 18px; }
  footer { margin-top: 26px; color: var(--muted); font-size: 12px; }
  @media (max-width: 900px) { .kpi-grid { grid-template-columns: repeat(2,1fr); } }
  @media (max-width: 600px) { .kpi-grid { grid-template-columns: 1fr; } }
</style>
</head>
<body>
  <div class="container">
    <h1>{{.Report.Title}}</h1>
    <div class="author">
      <p><strong>{{.Report.AuthorNameLabel}}:</strong> {{.Report.AuthorName}}</p>
      <p><strong>{{.Report.AuthorIDLabel}}:</strong> {{.Report.AuthorID}}</p>
      <p><em>{{.Report.Course}}</em></p>
    </div>
    <div class="sub">Generated: {{.Generated}}</div>
    <div class="kpi-grid">
{{- range .KPIs}}
      <div class="kpi"><div class="kpi-label">{{.Label}}</div><div class="kpi-value">{{.Value}}</div></div>
{{- end}}
    </div>
{{- range .Cards}}
    <section class="card">
      <h2>{{.Heading}}</h2>
      {{.Fragment}}
{{- if .Fallback}}
      <noscript>{{.Fallback}}</noscript>
{{- end}}
    </section>
{{- end}}
    <footer>{{.Report.Footer}}</footer>
  </div>
</body>
</html>
`
