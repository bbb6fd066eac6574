package model

// Report is a rendered cost report ready for delivery.
type Report struct {
	AccountID string
	Windows   CostWindows
	Summary   CostSummary
	Subject   string
	HTML      string
}
