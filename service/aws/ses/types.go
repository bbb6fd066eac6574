package awsses

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// API is the subset of the SES client used by the service.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type service struct {
	client API
	logger *slog.Logger
}

type MailService interface {
	Send(ctx context.Context, sender, recipient, subject, htmlBody string) (string, error)
}
