package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/config"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

var generatedAt = time.Date(2025, 3, 9, 14, 5, 33, 0, time.Local)

func renderPage(t *testing.T, cfg config.ReportConfig, kpis domain.KPISet, tables []domain.SummaryTable, opts RenderOptions) string {
	t.Helper()

	charts, err := NewRenderer(nil, opts).Render(context.Background(), tables)
	require.NoError(t, err)

	page, err := NewPage(cfg)
	require.NoError(t, err)

	out, err := page.Render(kpis, charts, generatedAt)
	require.NoError(t, err)
	return string(out)
}

func TestPage_Render(t *testing.T) {
	cfg := config.Default().Report
	kpis := domain.KPISet{TotalSales: 1234567.4, TotalOrders: 3000, UniqueCustomers: 1200, AverageOrderValue: 411.5}

	html := renderPage(t, cfg, kpis, []domain.SummaryTable{
		sampleTable(domain.SummaryTrend),
		sampleTable(domain.SummaryPayment),
		sampleTable(domain.SummaryTopCustomers),
	}, RenderOptions{})

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>TOKOPEDIA</title>")
	assert.Contains(t, html, `<html lang="en">`)
	assert.Equal(t, 1, strings.Count(html, `<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>`))
	assert.Contains(t, html, "<p><strong>Nama:</strong> Triana Revana Sirumpa</p>")
	assert.Contains(t, html, "<p><strong>NPM:</strong> 230712628</p>")
	assert.Contains(t, html, "<em>UTS Visualisasi dan Interpretasi Data</em>")
	assert.Contains(t, html, "Generated: 2025-03-09 14:05")
	assert.Contains(t, html, "clarity → hierarchy → storytelling.</footer>")

	assert.Contains(t, html, `<div class="kpi-label">Total Sales</div><div class="kpi-value">$1,234,567</div>`)
	assert.Contains(t, html, `<div class="kpi-label">Total Orders</div><div class="kpi-value">3,000</div>`)
	assert.Contains(t, html, `<div class="kpi-label">Unique Customers</div><div class="kpi-value">1,200</div>`)
	assert.Contains(t, html, `<div class="kpi-label">AOV</div><div class="kpi-value">$412</div>`)

	trend := strings.Index(html, "<h2>Tren Penjualan Bulanan</h2>")
	payment := strings.Index(html, "<h2>Porsi Metode Pembayaran</h2>")
	customers := strings.Index(html, "<h2>Top 10 Pelanggan</h2>")
	require.True(t, trend > 0 && payment > 0 && customers > 0)
	assert.Less(t, trend, payment)
	assert.Less(t, payment, customers)

	assert.NotContains(t, html, "Top Kategori")
	assert.NotContains(t, html, "Top 10 Produk")
	assert.Equal(t, 3, strings.Count(html, `<section class="card">`))
	assert.Contains(t, html, `Plotly.newPlot("chart-trend"`)
	assert.NotContains(t, html, "<noscript>")
}

func TestPage_KPIOrderAndZeroes(t *testing.T) {
	page, err := NewPage(config.Default().Report)
	require.NoError(t, err)

	assert.Equal(t, []KPICard{
		{Label: "Total Sales", Value: "$0"},
		{Label: "Total Orders", Value: "0"},
		{Label: "Unique Customers", Value: "0"},
		{Label: "AOV", Value: "$0"},
	}, page.KPICards(domain.KPISet{}))
}

func TestPage_EscapesConfiguredText(t *testing.T) {
	cfg := config.Default().Report
	cfg.Title = "Sales <Q1> & more"

	html := renderPage(t, cfg, domain.KPISet{}, nil, RenderOptions{})

	assert.Contains(t, html, "<h1>Sales &lt;Q1&gt; &amp; more</h1>")
	assert.NotContains(t, html, "<section")
}

func TestPage_StaticFallback(t *testing.T) {
	html := renderPage(t, config.Default().Report, domain.KPISet{},
		[]domain.SummaryTable{sampleTable(domain.SummaryCategory)},
		RenderOptions{StaticFallback: true})

	assert.Contains(t, html, "<noscript><svg")
}

func TestPage_DeterministicApartFromTimestamp(t *testing.T) {
	tables := []domain.SummaryTable{sampleTable(domain.SummaryTrend), sampleTable(domain.SummaryCategory)}
	kpis := domain.KPISet{TotalSales: 40, TotalOrders: 2, UniqueCustomers: 2, AverageOrderValue: 20}

	first := renderPage(t, config.Default().Report, kpis, tables, RenderOptions{})
	second := renderPage(t, config.Default().Report, kpis, tables, RenderOptions{})

	assert.Equal(t, first, second)
}
