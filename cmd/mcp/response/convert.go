package response

import (
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/elC0mpa/aws-cost-report/service/report"
	"github.com/shopspring/decimal"
)

// ConvertReport converts model.Report to response.CostSummary
func ConvertReport(r *model.Report) *CostSummary {
	if r == nil {
		return nil
	}

	summary := r.Summary
	services := make([]ServiceCost, 0, len(summary.Services))
	for _, svc := range summary.Services {
		services = append(services, ServiceCost{
			Name:       svc.Name,
			Amount:     money(svc.Amount),
			Unit:       svc.Unit,
			BarPercent: money(report.BarWidth(svc.Amount, summary.MaxCost)),
		})
	}

	currency := summary.Unit
	if currency == "" {
		currency = model.DefaultUnit
	}

	return &CostSummary{
		AccountID:   r.AccountID,
		Date:        r.Windows.Today.Format(model.DateLayout),
		MonthToDate: convertPeriod(r.Windows.MonthToDate),
		Forecast:    convertPeriod(r.Windows.Forecast),
		Total:       money(summary.Total),
		LastDay:     money(summary.Trailing),
		Forecasted:  money(summary.Forecast),
		Services:    services,
		Currency:    currency,
	}
}

func convertPeriod(d model.DateInterval) Period {
	return Period{StartDate: d.Start, EndDate: d.End}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
