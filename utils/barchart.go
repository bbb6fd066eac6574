package utils

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/elC0mpa/aws-cost-report/service/report"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

// maxChartBars keeps labels readable in an average terminal.
const maxChartBars = 8

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawServiceChart prints a bar per service, most expensive first.
func DrawServiceChart(r *model.Report) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" AWS COST BREAKDOWN"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(r.AccountID))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	services := r.Summary.Services
	if len(services) == 0 {
		fmt.Println(text.FgHiGreen.Sprint(" No spend recorded this month"))
		return
	}
	if len(services) > maxChartBars {
		services = services[:maxChartBars]
	}

	bc := barchart.New(130, 20)
	colors := assignRankedColors(len(services))

	for idx, svc := range services {
		data := barchart.BarData{
			Label: getBarLabel(svc),
			Values: []barchart.BarValue{
				{
					Value: svc.Amount.InexactFloat64(),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[idx])),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()
	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

func getBarLabel(svc model.ServiceCost) string {
	name := svc.Name
	if runes := []rune(name); len(runes) > 14 {
		name = string(runes[:13]) + "…"
	}
	return fmt.Sprintf("%s: %s", name, report.FormatCurrency(svc.Amount))
}

// assignRankedColors colors already ranked bars; bars past the palette reuse its last color.
func assignRankedColors(n int) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	colors := make([]string, n)
	for rank := range colors {
		if rank < len(palette) {
			colors[rank] = palette[rank]
		} else {
			colors[rank] = palette[len(palette)-1]
		}
	}
	return colors
}
