package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elC0mpa/aws-cost-report/config"
	"github.com/elC0mpa/aws-cost-report/model"
	awsconfig "github.com/elC0mpa/aws-cost-report/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-cost-report/service/aws/costexplorer"
	awsses "github.com/elC0mpa/aws-cost-report/service/aws/ses"
	awssts "github.com/elC0mpa/aws-cost-report/service/aws/sts"
	"github.com/elC0mpa/aws-cost-report/service/orchestrator"
	"github.com/elC0mpa/aws-cost-report/utils"
	"github.com/spf13/cobra"
)

var flags model.Flags

var rootCmd = &cobra.Command{
	Use:   "aws-cost-report",
	Short: "Build the daily AWS cost report locally",
	Long: `aws-cost-report queries Cost Explorer for month-to-date, last 24h and forecasted spend,
prints the breakdown, and optionally writes the HTML report to a file or sends it through SES.`,
	SilenceUsage: true,
	RunE:         runReport,
}

func init() {
	rootCmd.Flags().StringVar(&flags.ConfigFile, "config", "", "config file (YAML)")
	rootCmd.Flags().StringVar(&flags.Region, "region", "", "AWS region (default: AWS_REGION or ap-southeast-1)")
	rootCmd.Flags().StringVar(&flags.Profile, "profile", "", "AWS profile configuration")
	rootCmd.Flags().BoolVar(&flags.Send, "send", false, "Send the report to RECIPIENT_EMAIL")
	rootCmd.Flags().StringVarP(&flags.OutFile, "out", "o", "", "Write the HTML report to this file")
	rootCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Skip the banner and terminal charts")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return err
	}
	if flags.Region != "" {
		cfg.AWSRegion = flags.Region
	}
	if flags.Profile != "" {
		cfg.AWSProfile = flags.Profile
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, cfg.AWSRegion, cfg.AWSProfile)
	if err != nil {
		return err
	}
	sesCfg, err := cfgService.GetAWSCfg(ctx, cfg.SESRegion, cfg.AWSProfile)
	if err != nil {
		return err
	}

	orchestratorService := orchestrator.NewService(
		cfg,
		awssts.NewService(awsCfg),
		awscostexplorer.NewService(awsCfg),
		awsses.NewService(sesCfg, logger),
		logger,
	)

	if !flags.Quiet {
		utils.DrawBanner()
		utils.StartSpinner()
	}
	r, err := orchestratorService.Prepare(ctx)
	if !flags.Quiet {
		utils.StopSpinner()
	}
	if err != nil {
		return err
	}

	if !flags.Quiet {
		utils.DrawCostTable(r)
		utils.DrawServiceChart(r)
	}

	if flags.OutFile != "" {
		if err := os.WriteFile(flags.OutFile, []byte(r.HTML), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", flags.OutFile)
	}

	if flags.Send {
		messageID, err := orchestratorService.Deliver(ctx, r)
		if err != nil {
			return err
		}
		fmt.Printf("Report sent to %s (message id %s)\n", cfg.RecipientEmail, messageID)
	}

	return nil
}
