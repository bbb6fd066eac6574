package awscostexplorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/shopspring/decimal"
)

const costsAggregation = "UnblendedCost"

var errMissingAmount = errors.New("missing amount")

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return NewServiceWithClient(client)
}

func NewServiceWithClient(client API) *service {
	return &service{
		client: client,
	}
}

// GetServiceBreakdown returns the unblended cost of each service in the window, in API order.
// Entries are not filtered; zero and negative amounts are passed through.
func (s *service) GetServiceBreakdown(ctx context.Context, window model.DateInterval) ([]model.ServiceCost, error) {
	// Cost Explorer rejects ranges where start == end (the first of the month).
	if window.IsEmpty() {
		return []model.ServiceCost{}, nil
	}

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod:  toDateInterval(window),
		Metrics:     []string{costsAggregation},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String("SERVICE"),
				Type: types.GroupDefinitionTypeDimension,
			},
		},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, model.NewError(model.KindQuery, "get service breakdown", err)
	}

	return s.mergeGroups(output.ResultsByTime)
}

// GetForecast returns the forecasted unblended cost for the window.
func (s *service) GetForecast(ctx context.Context, window model.DateInterval) (decimal.Decimal, error) {
	input := &costexplorer.GetCostForecastInput{
		Granularity: types.GranularityMonthly,
		Metric:      types.MetricUnblendedCost,
		TimePeriod:  toDateInterval(window),
	}

	output, err := s.client.GetCostForecast(ctx, input)
	if err != nil {
		return decimal.Zero, model.NewError(model.KindQuery, "get cost forecast", err)
	}

	if output.Total == nil {
		return decimal.Zero, model.NewError(model.KindUnexpected, "parse cost forecast", errMissingAmount)
	}
	amount, err := parseAmount(output.Total.Amount)
	if err != nil {
		return decimal.Zero, model.NewError(model.KindUnexpected, "parse cost forecast", err)
	}
	return amount, nil
}

// GetTrailingCost returns the daily unblended cost for the window. A window without any
// time bucket yet (early in the day) counts as zero.
func (s *service) GetTrailingCost(ctx context.Context, window model.DateInterval) (decimal.Decimal, error) {
	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityDaily,
		TimePeriod:  toDateInterval(window),
		Metrics:     []string{costsAggregation},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return decimal.Zero, model.NewError(model.KindQuery, "get trailing cost", err)
	}

	if len(output.ResultsByTime) == 0 {
		return decimal.Zero, nil
	}

	metric, ok := output.ResultsByTime[0].Total[costsAggregation]
	if !ok {
		return decimal.Zero, model.NewError(model.KindUnexpected, "parse trailing cost", errMissingAmount)
	}
	amount, err := parseAmount(metric.Amount)
	if err != nil {
		return decimal.Zero, model.NewError(model.KindUnexpected, "parse trailing cost", err)
	}
	return amount, nil
}

func (s *service) mergeGroups(results []types.ResultByTime) ([]model.ServiceCost, error) {
	services := make([]model.ServiceCost, 0)
	index := make(map[string]int)

	for _, timeResult := range results {
		for _, g := range timeResult.Groups {
			if len(g.Keys) == 0 {
				return nil, model.NewError(model.KindUnexpected, "parse service breakdown", errors.New("group without service key"))
			}
			name := g.Keys[0]

			metric, ok := g.Metrics[costsAggregation]
			if !ok {
				return nil, model.NewError(model.KindUnexpected, "parse service breakdown", fmt.Errorf("%s: %w", name, errMissingAmount))
			}
			amount, err := parseAmount(metric.Amount)
			if err != nil {
				return nil, model.NewError(model.KindUnexpected, "parse service breakdown", fmt.Errorf("%s: %w", name, err))
			}

			if i, seen := index[name]; seen {
				services[i].Amount = services[i].Amount.Add(amount)
				continue
			}

			unit := aws.ToString(metric.Unit)
			if unit == "" {
				unit = model.DefaultUnit
			}
			index[name] = len(services)
			services = append(services, model.ServiceCost{
				Name:   name,
				Amount: amount,
				Unit:   unit,
			})
		}
	}

	return services, nil
}

func toDateInterval(window model.DateInterval) *types.DateInterval {
	return &types.DateInterval{
		Start: aws.String(window.Start),
		End:   aws.String(window.End),
	}
}

func parseAmount(amount *string) (decimal.Decimal, error) {
	if amount == nil {
		return decimal.Zero, errMissingAmount
	}
	d, err := decimal.NewFromString(*amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", *amount, err)
	}
	return d, nil
}
