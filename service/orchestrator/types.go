package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/elC0mpa/aws-cost-report/config"
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/elC0mpa/aws-cost-report/service"
	"go.opentelemetry.io/otel/trace"
)

type orchestratorService struct {
	cfg             *config.Config
	identityService service.IdentityService
	costService     service.CostService
	mailService     service.MailService
	notifiers       []service.Notifier
	logger          *slog.Logger
	tracer          trace.Tracer
	clock           func() time.Time
}

type OrchestratorService interface {
	Run(ctx context.Context) model.Result
	Prepare(ctx context.Context) (*model.Report, error)
	Deliver(ctx context.Context, report *model.Report) (string, error)
}

// Option customizes an orchestrator.
type Option func(*orchestratorService)

// WithClock replaces time.Now as the source of "today".
func WithClock(clock func() time.Time) Option {
	return func(s *orchestratorService) {
		s.clock = clock
	}
}

// WithNotifiers adds channels told about failed runs.
func WithNotifiers(notifiers ...service.Notifier) Option {
	return func(s *orchestratorService) {
		s.notifiers = append(s.notifiers, notifiers...)
	}
}
