package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/shopspring/decimal"
)

// API is the subset of the Cost Explorer client used by the service.
type API interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
	GetCostForecast(ctx context.Context, params *costexplorer.GetCostForecastInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostForecastOutput, error)
}

type service struct {
	client API
}

type CostService interface {
	GetServiceBreakdown(ctx context.Context, window model.DateInterval) ([]model.ServiceCost, error)
	GetForecast(ctx context.Context, window model.DateInterval) (decimal.Decimal, error)
	GetTrailingCost(ctx context.Context, window model.DateInterval) (decimal.Decimal, error)
}
