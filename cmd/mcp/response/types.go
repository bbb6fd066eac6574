package response

// ServiceCost represents cost for a single service
type ServiceCost struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Unit       string  `json:"unit"`
	BarPercent float64 `json:"bar_percent"`
}

// Period represents a queried date range
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// CostSummary represents the figures shown in the daily report
type CostSummary struct {
	AccountID   string        `json:"account_id"`
	Date        string        `json:"date"`
	MonthToDate Period        `json:"month_to_date_period"`
	Forecast    Period        `json:"forecast_period"`
	Total       float64       `json:"month_to_date_total"`
	LastDay     float64       `json:"last_24h"`
	Forecasted  float64       `json:"forecast"`
	Services    []ServiceCost `json:"services"`
	Currency    string        `json:"currency"`
}
