// Package aggregator turns raw billing query results into a CostSummary.
package aggregator

import (
	"sort"

	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/shopspring/decimal"
)

// defaultMaxCost scales the chart when no service has spend.
var defaultMaxCost = decimal.NewFromInt(1)

// Aggregate filters, totals and orders the service breakdown.
//
// Entries with an amount of zero or below are dropped from both the list and the total, so
// credits and refunds never show up in the report. Remaining entries are sorted by amount,
// highest first; ties keep their input order.
func Aggregate(breakdown []model.ServiceCost, forecast, trailing decimal.Decimal) model.CostSummary {
	services := make([]model.ServiceCost, 0, len(breakdown))
	total := decimal.Zero

	for _, entry := range breakdown {
		if !entry.Amount.IsPositive() {
			continue
		}
		services = append(services, entry)
		total = total.Add(entry.Amount)
	}

	orderCostServices(services)

	maxCost := defaultMaxCost
	unit := model.DefaultUnit
	if len(services) > 0 {
		maxCost = services[0].Amount
		if services[0].Unit != "" {
			unit = services[0].Unit
		}
	}

	return model.CostSummary{
		Total:    total,
		Trailing: trailing,
		Forecast: forecast,
		Services: services,
		MaxCost:  maxCost,
		Unit:     unit,
	}
}

func orderCostServices(services []model.ServiceCost) {
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Amount.GreaterThan(services[j].Amount)
	})
}
