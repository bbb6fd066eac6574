// Package report renders a CostSummary as a self-contained HTML email body.
//
// The document uses inline CSS only so it displays in mail clients that block remote
// content. Service names come from the billing API and are escaped by html/template.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/report.html.tmpl
var reportTemplate string

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

var (
	hundred = decimal.NewFromInt(100)
	zero    = decimal.Zero
)

type reportView struct {
	Total    string
	Trailing string
	Forecast string
	Unit     string
	Rows     []rowView
}

type rowView struct {
	Name     string
	Cost     string
	BarStyle template.CSS
}

// Render builds the HTML report. The same summary always yields the same bytes.
func Render(summary model.CostSummary) (string, error) {
	unit := summary.Unit
	if unit == "" {
		unit = model.DefaultUnit
	}

	view := reportView{
		Total:    FormatCurrency(summary.Total),
		Trailing: FormatCurrency(summary.Trailing),
		Forecast: FormatCurrency(summary.Forecast),
		Unit:     unit,
		Rows:     make([]rowView, 0, len(summary.Services)),
	}

	for _, svc := range summary.Services {
		width := BarWidth(svc.Amount, summary.MaxCost)
		view.Rows = append(view.Rows, rowView{
			Name: svc.Name,
			Cost: FormatCurrency(svc.Amount),
			// width is a formatted decimal in [0,100], safe to mark as CSS.
			BarStyle: template.CSS(fmt.Sprintf("width: %s%%;", width.StringFixed(2))),
		})
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}

// FormatCurrency formats amount as dollars with two decimals and thousands separators,
// e.g. $1,234.50 or -$3.00.
func FormatCurrency(amount decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "-" + p.Sprintf("$%.2f", rounded.Neg().InexactFloat64())
	}
	return p.Sprintf("$%.2f", rounded.InexactFloat64())
}

// BarWidth returns cost as a percentage of maxCost, clamped to [0,100].
func BarWidth(cost, maxCost decimal.Decimal) decimal.Decimal {
	if !maxCost.IsPositive() {
		return zero
	}
	width := cost.Div(maxCost).Mul(hundred)
	if width.LessThan(zero) {
		return zero
	}
	if width.GreaterThan(hundred) {
		return hundred
	}
	return width
}
