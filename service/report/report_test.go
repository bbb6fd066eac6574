package report_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/elC0mpa/aws-cost-report/service/aggregator"
	"github.com/elC0mpa/aws-cost-report/service/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var barWidthPattern = regexp.MustCompile(`width: ([0-9]+\.[0-9]{2})%;`)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func typicalDay() model.CostSummary {
	return aggregator.Aggregate([]model.ServiceCost{
		{Name: "EC2", Amount: d("120.50"), Unit: "USD"},
		{Name: "S3", Amount: d("0.00"), Unit: "USD"},
		{Name: "Lambda", Amount: d("4.25"), Unit: "USD"},
	}, d("300.00"), d("15.75"))
}

func TestRender_TypicalDay(t *testing.T) {
	html, err := report.Render(typicalDay())
	require.NoError(t, err)

	assert.Contains(t, html, "$124.75")
	assert.Contains(t, html, "$15.75")
	assert.Contains(t, html, "$300.00")
	assert.Contains(t, html, "$120.50")
	assert.Contains(t, html, "$4.25")
	assert.Contains(t, html, "width: 100.00%;")
	assert.Contains(t, html, "width: 3.53%;")
	assert.NotContains(t, html, "S3")

	// Header row plus one row per service.
	assert.Equal(t, 3, strings.Count(html, "<tr>")-1)
	assert.Less(t, strings.Index(html, "EC2"), strings.Index(html, "Lambda"))
}

func TestRender_NoSpend(t *testing.T) {
	summary := aggregator.Aggregate(nil, d("0.00"), d("0.00"))

	html, err := report.Render(summary)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(html, "$0.00"))
	assert.NotContains(t, html, "class=\"bar\"")
	assert.NotContains(t, html, "NaN")
	assert.NotContains(t, html, "Inf")
	// Summary row and the breakdown header row.
	assert.Equal(t, 2, strings.Count(html, "<tr>"))
}

func TestRender_EscapesServiceNames(t *testing.T) {
	summary := aggregator.Aggregate([]model.ServiceCost{
		{Name: `<script>alert("x")</script>`, Amount: d("1"), Unit: "USD"},
		{Name: `Tom & Jerry's "Service"`, Amount: d("0.5"), Unit: "USD"},
	}, decimal.Zero, decimal.Zero)

	html, err := report.Render(summary)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Tom &amp; Jerry&#39;s &#34;Service&#34;")
}

func TestRender_Deterministic(t *testing.T) {
	first, err := report.Render(typicalDay())
	require.NoError(t, err)
	second, err := report.Render(typicalDay())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_SelfContained(t *testing.T) {
	html, err := report.Render(typicalDay())
	require.NoError(t, err)

	assert.NotContains(t, html, "http://")
	assert.NotContains(t, html, "https://")
	assert.NotContains(t, html, "<link")
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, `<meta charset="UTF-8">`)
}

func TestRender_BarWidthsWithinBounds(t *testing.T) {
	breakdown := []model.ServiceCost{}
	for _, amount := range []string{"9999.99", "0.01", "1234.56", "42", "0.005", "9999.99"} {
		breakdown = append(breakdown, model.ServiceCost{Name: "svc-" + amount, Amount: d(amount), Unit: "USD"})
	}

	html, err := report.Render(aggregator.Aggregate(breakdown, decimal.Zero, decimal.Zero))
	require.NoError(t, err)

	matches := barWidthPattern.FindAllStringSubmatch(html, -1)
	require.Len(t, matches, len(breakdown))
	for _, m := range matches {
		width := d(m[1])
		assert.False(t, width.IsNegative(), m[1])
		assert.False(t, width.GreaterThan(decimal.NewFromInt(100)), m[1])
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"4.25", "$4.25"},
		{"124.75", "$124.75"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"0.005", "$0.01"},
		{"-3", "-$3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, report.FormatCurrency(d(tt.amount)))
		})
	}
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, "100.00", report.BarWidth(d("120.50"), d("120.50")).StringFixed(2))
	assert.Equal(t, "3.53", report.BarWidth(d("4.25"), d("120.50")).StringFixed(2))
	assert.True(t, report.BarWidth(d("5"), decimal.Zero).IsZero())
	assert.Equal(t, "100", report.BarWidth(d("200"), d("100")).String())
	assert.True(t, report.BarWidth(d("-1"), d("100")).IsZero())
}
