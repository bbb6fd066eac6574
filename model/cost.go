package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the Cost Explorer date format.
const DateLayout = "2006-01-02"

// DefaultUnit is used when the billing API does not report a currency.
const DefaultUnit = "USD"

// DateInterval represents a time period for cost analysis
type DateInterval struct {
	Start string
	End   string
}

// IsEmpty reports whether the interval covers no days.
func (d DateInterval) IsEmpty() bool {
	return d.Start == d.End
}

// CostWindows holds the three periods queried by a single report run.
type CostWindows struct {
	Today       time.Time
	MonthToDate DateInterval
	TrailingDay DateInterval
	Forecast    DateInterval
}

// NewCostWindows derives every window from the same instant so they agree on "today".
func NewCostWindows(now time.Time) CostWindows {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	todayStr := today.Format(DateLayout)

	return CostWindows{
		Today: today,
		MonthToDate: DateInterval{
			Start: firstOfMonth.Format(DateLayout),
			End:   todayStr,
		},
		TrailingDay: DateInterval{
			Start: today.AddDate(0, 0, -1).Format(DateLayout),
			End:   todayStr,
		},
		Forecast: DateInterval{
			Start: todayStr,
			End:   today.AddDate(0, 0, 30).Format(DateLayout),
		},
	}
}

// ServiceCost represents cost for a single service
type ServiceCost struct {
	Name   string
	Amount decimal.Decimal
	Unit   string
}

// CostSummary is the aggregated view of one run's billing data.
type CostSummary struct {
	Total    decimal.Decimal
	Trailing decimal.Decimal
	Forecast decimal.Decimal
	// Services is ordered by Amount, highest first.
	Services []ServiceCost
	// MaxCost scales the report's bar chart; 1 when Services is empty.
	MaxCost decimal.Decimal
	Unit    string
}
