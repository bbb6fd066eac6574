package utils

import (
	"fmt"

	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/elC0mpa/aws-cost-report/service/report"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DrawCostTable prints the headline figures and the per-service breakdown.
func DrawCostTable(r *model.Report) {
	fmt.Println(RenderCostTable(r))
}

// RenderCostTable returns the table DrawCostTable prints.
func RenderCostTable(r *model.Report) string {
	summary := r.Summary
	monthHeader := fmt.Sprintf("Month to Date\n(%s\n%s)", r.Windows.MonthToDate.Start, r.Windows.MonthToDate.End)

	tw := table.Table{}
	tw.SetTitle("Account %s", text.FgBlue.Sprint(r.AccountID))
	tw.AppendHeader(table.Row{"Service", monthHeader, "Share"})

	tw.AppendRow(populateFirstRow("Month-to-Date Total", summary.Total))
	tw.AppendRow(populateFirstRow("Last 24h", summary.Trailing))
	tw.AppendRow(populateForecastRow(summary))
	tw.AppendSeparator()

	for _, svc := range summary.Services {
		tw.AppendRow(populateRow(svc, summary.Total))
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{
			Number:       1,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number: 2,
			Align:  text.AlignRight,
		},
		{
			Number:       3,
			Align:        text.AlignRight,
			VAlignHeader: text.VAlignMiddle,
		},
	})
	return tw.Render()
}

func populateFirstRow(label string, amount decimal.Decimal) table.Row {
	return table.Row{
		text.FgHiGreen.Sprint(label),
		text.FgHiGreen.Sprint(report.FormatCurrency(amount)),
		"",
	}
}

func populateForecastRow(summary model.CostSummary) table.Row {
	row := table.Row{
		text.FgHiYellow.Sprint("Forecast (30 days)"),
		text.FgHiYellow.Sprint(report.FormatCurrency(summary.Forecast)),
		"",
	}

	// Spend already past the forecast is worth flagging.
	if summary.Forecast.IsPositive() && summary.Total.GreaterThan(summary.Forecast) {
		row[0] = text.FgHiRed.Sprint("Forecast (30 days)")
		row[1] = text.FgHiRed.Sprint(report.FormatCurrency(summary.Forecast))
	}
	return row
}

func populateRow(svc model.ServiceCost, total decimal.Decimal) table.Row {
	share := decimal.Zero
	if total.IsPositive() {
		share = svc.Amount.Div(total).Mul(hundred)
	}

	return table.Row{
		text.FgGreen.Sprint(svc.Name),
		report.FormatCurrency(svc.Amount),
		fmt.Sprintf("%s%%", share.StringFixed(1)),
	}
}
