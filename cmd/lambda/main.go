package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/elC0mpa/aws-cost-report/config"
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/elC0mpa/aws-cost-report/service"
	awsconfig "github.com/elC0mpa/aws-cost-report/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-cost-report/service/aws/costexplorer"
	awslambda "github.com/elC0mpa/aws-cost-report/service/aws/lambda"
	awsses "github.com/elC0mpa/aws-cost-report/service/aws/ses"
	"github.com/elC0mpa/aws-cost-report/service/notify"
	"github.com/elC0mpa/aws-cost-report/service/orchestrator"
	"github.com/elC0mpa/aws-cost-report/service/telemetry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		slog.Error("failed to create logger", "error", err)
		os.Exit(1)
	}

	flushTraces, err := telemetry.InitTracer(ctx, "aws-cost-report", cfg)
	if err != nil {
		logger.Error("failed to init tracer", "error", err)
		os.Exit(1)
	}

	// Clients are built once per cold start and reused by warm invocations.
	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, cfg.AWSRegion, "")
	if err != nil {
		logger.Error("failed to configure AWS", "error", err)
		os.Exit(1)
	}
	sesCfg, err := cfgService.GetAWSCfg(ctx, cfg.SESRegion, "")
	if err != nil {
		logger.Error("failed to configure AWS", "error", err)
		os.Exit(1)
	}

	orchestratorService := orchestrator.NewService(
		cfg,
		awslambda.NewService(),
		awscostexplorer.NewService(awsCfg),
		awsses.NewService(sesCfg, logger),
		logger,
		orchestrator.WithNotifiers(initNotifiers(cfg)...),
	)

	lambda.Start(func(ctx context.Context, event events.CloudWatchEvent) (model.Result, error) {
		logger.Info("cost report triggered", "event_id", event.ID, "source", event.Source)

		result := orchestratorService.Run(ctx)
		if err := flushTraces(ctx); err != nil {
			logger.Warn("failed to flush traces", "error", err)
		}
		return result, nil
	})
}

func initNotifiers(cfg *config.Config) []service.Notifier {
	var notifiers []service.Notifier

	if cfg.HasSlack() {
		notifiers = append(notifiers, notify.NewSlackNotifier(cfg.SlackWebhookURL, cfg.SlackChannel))
	}
	if cfg.HasFailureWebhook() {
		notifiers = append(notifiers, notify.NewWebhookNotifier(cfg.FailureWebhookURL, cfg.FailureWebhookSecret))
	}

	return notifiers
}
