package main

import (
	"context"
	"fmt"

	"github.com/elC0mpa/aws-cost-report/cmd/mcp/tools"
	"github.com/elC0mpa/aws-cost-report/config"
	awsconfig "github.com/elC0mpa/aws-cost-report/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-cost-report/service/aws/costexplorer"
	awsses "github.com/elC0mpa/aws-cost-report/service/aws/ses"
	awssts "github.com/elC0mpa/aws-cost-report/service/aws/sts"
	"github.com/elC0mpa/aws-cost-report/service/orchestrator"
)

// newReportFactory builds the AWS clients lazily so a tool call picks up refreshed credentials.
func newReportFactory(cfg *config.Config) tools.ReportFactory {
	return func(ctx context.Context) (orchestrator.OrchestratorService, error) {
		logger, err := config.NewLogger(cfg)
		if err != nil {
			return nil, err
		}

		cfgService := awsconfig.NewService()
		awsCfg, err := cfgService.GetAWSCfg(ctx, cfg.AWSRegion, cfg.AWSProfile)
		if err != nil {
			return nil, fmt.Errorf("configure aws: %w", err)
		}
		sesCfg, err := cfgService.GetAWSCfg(ctx, cfg.SESRegion, cfg.AWSProfile)
		if err != nil {
			return nil, fmt.Errorf("configure aws: %w", err)
		}

		return orchestrator.NewService(
			cfg,
			awssts.NewService(awsCfg),
			awscostexplorer.NewService(awsCfg),
			awsses.NewService(sesCfg, logger),
			logger,
		), nil
	}
}
