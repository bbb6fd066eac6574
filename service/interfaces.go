package service

import (
	"context"

	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/shopspring/decimal"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// CostService provides the billing queries a report is built from
type CostService interface {
	GetServiceBreakdown(ctx context.Context, window model.DateInterval) ([]model.ServiceCost, error)
	GetForecast(ctx context.Context, window model.DateInterval) (decimal.Decimal, error)
	GetTrailingCost(ctx context.Context, window model.DateInterval) (decimal.Decimal, error)
}

// MailService delivers a rendered report
type MailService interface {
	Send(ctx context.Context, sender, recipient, subject, htmlBody string) (string, error)
}

// Notifier reports failed runs through a secondary channel
type Notifier interface {
	Name() string
	Notify(ctx context.Context, failure model.Failure) error
}
