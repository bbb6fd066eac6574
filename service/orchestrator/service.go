package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/elC0mpa/aws-cost-report/config"
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/elC0mpa/aws-cost-report/service"
	"github.com/elC0mpa/aws-cost-report/service/aggregator"
	"github.com/elC0mpa/aws-cost-report/service/report"
	"github.com/elC0mpa/aws-cost-report/service/telemetry"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const successMessage = "Email sent successfully!"

func NewService(cfg *config.Config, identityService service.IdentityService, costService service.CostService, mailService service.MailService, logger *slog.Logger, opts ...Option) *orchestratorService {
	s := &orchestratorService{
		cfg:             cfg,
		identityService: identityService,
		costService:     costService,
		mailService:     mailService,
		logger:          logger,
		tracer:          otel.Tracer(telemetry.TracerName),
		clock:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run builds and sends the report. Every failure ends the run and is reported in the result.
func (s *orchestratorService) Run(ctx context.Context) model.Result {
	ctx, span := s.tracer.Start(ctx, "report.run")
	defer span.End()

	r, err := s.run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(model.KindOf(err)))
		return s.fail(ctx, r, err)
	}

	return model.Result{StatusCode: http.StatusOK, Body: successMessage}
}

func (s *orchestratorService) run(ctx context.Context) (*model.Report, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	r, err := s.Prepare(ctx)
	if err != nil {
		return r, err
	}

	if _, err := s.Deliver(ctx, r); err != nil {
		return r, err
	}
	return r, nil
}

// Prepare queries the billing API and renders the report without sending it.
// On failure the returned report carries whatever was resolved before the error.
func (s *orchestratorService) Prepare(ctx context.Context) (*model.Report, error) {
	r := &model.Report{Windows: model.NewCostWindows(s.clock())}

	account, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		return r, err
	}
	r.AccountID = account.AccountID

	summary, err := s.summarize(ctx, r.Windows)
	if err != nil {
		return r, err
	}
	r.Summary = summary

	s.logger.Debug("cost summary",
		"account_id", r.AccountID,
		"total", summary.Total.StringFixed(2),
		"trailing", summary.Trailing.StringFixed(2),
		"forecast", summary.Forecast.StringFixed(2),
		"services", len(summary.Services),
	)

	_, span := s.tracer.Start(ctx, "report.render")
	html, err := report.Render(summary)
	span.End()
	if err != nil {
		return r, model.NewError(model.KindUnexpected, "render report", err)
	}
	r.HTML = html
	r.Subject = Subject(r.AccountID, r.Windows)

	return r, nil
}

// Deliver sends a prepared report to the configured recipient and returns the message id.
func (s *orchestratorService) Deliver(ctx context.Context, r *model.Report) (string, error) {
	if err := s.cfg.Validate(); err != nil {
		return "", err
	}

	ctx, span := s.tracer.Start(ctx, "report.deliver")
	defer span.End()

	messageID, err := s.mailService.Send(ctx, s.cfg.SenderEmail, s.cfg.RecipientEmail, r.Subject, r.HTML)
	if err != nil {
		return "", err
	}

	s.logger.Info("cost report sent", "account_id", r.AccountID, "message_id", messageID)
	return messageID, nil
}

// summarize issues the three billing reads concurrently. They share the windows derived from
// a single "now", so their periods stay consistent.
func (s *orchestratorService) summarize(ctx context.Context, windows model.CostWindows) (model.CostSummary, error) {
	var (
		breakdown []model.ServiceCost
		forecast  decimal.Decimal
		trailing  decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ctx, span := s.startQuerySpan(gctx, "costexplorer.service_breakdown", windows.MonthToDate)
		defer span.End()

		var err error
		breakdown, err = s.costService.GetServiceBreakdown(ctx, windows.MonthToDate)
		return err
	})
	g.Go(func() error {
		ctx, span := s.startQuerySpan(gctx, "costexplorer.forecast", windows.Forecast)
		defer span.End()

		var err error
		forecast, err = s.costService.GetForecast(ctx, windows.Forecast)
		return err
	})
	g.Go(func() error {
		ctx, span := s.startQuerySpan(gctx, "costexplorer.trailing_cost", windows.TrailingDay)
		defer span.End()

		var err error
		trailing, err = s.costService.GetTrailingCost(ctx, windows.TrailingDay)
		return err
	})

	if err := g.Wait(); err != nil {
		return model.CostSummary{}, err
	}

	return aggregator.Aggregate(breakdown, forecast, trailing), nil
}

func (s *orchestratorService) fail(ctx context.Context, r *model.Report, err error) model.Result {
	kind := model.KindOf(err)
	s.logger.Error("an error occurred in the handler", "kind", kind, "error", err)

	failure := model.Failure{
		Kind:    kind,
		Message: err.Error(),
		Date:    s.clock().Format(model.DateLayout),
	}
	if r != nil {
		failure.AccountID = r.AccountID
		failure.Date = r.Windows.Today.Format(model.DateLayout)
	}

	for _, n := range s.notifiers {
		if nerr := n.Notify(ctx, failure); nerr != nil {
			s.logger.Warn("failure notification not sent", "notifier", n.Name(), "error", nerr)
		}
	}

	return model.Result{
		StatusCode: http.StatusInternalServerError,
		Body:       fmt.Sprintf("An error occurred: %s", err),
	}
}

func (s *orchestratorService) startQuerySpan(ctx context.Context, name string, window model.DateInterval) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, name)
	span.SetAttributes(
		attribute.String("window.start", window.Start),
		attribute.String("window.end", window.End),
	)
	return ctx, span
}

// Subject is the email subject line for a report.
func Subject(accountID string, windows model.CostWindows) string {
	return fmt.Sprintf("AWS Cost Summary for %s - %s", accountID, windows.Today.Format(model.DateLayout))
}
