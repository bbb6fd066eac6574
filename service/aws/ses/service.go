package awsses

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/elC0mpa/aws-cost-report/model"
)

const charset = "UTF-8"

func NewService(awsconfig aws.Config, logger *slog.Logger) *service {
	client := ses.NewFromConfig(awsconfig)
	return NewServiceWithClient(client, logger)
}

func NewServiceWithClient(client API, logger *slog.Logger) *service {
	return &service{
		client: client,
		logger: logger,
	}
}

// Send delivers htmlBody to a single recipient and returns the SES message id.
func (s *service) Send(ctx context.Context, sender, recipient, subject, htmlBody string) (string, error) {
	input := &ses.SendEmailInput{
		Source: aws.String(sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String(charset),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(htmlBody),
					Charset: aws.String(charset),
				},
			},
		},
	}

	output, err := s.client.SendEmail(ctx, input)
	if err != nil {
		s.logger.Error("error sending email", "recipient", recipient, "error", err)
		return "", model.NewError(model.KindDelivery, "send email", err)
	}

	messageID := aws.ToString(output.MessageId)
	s.logger.Info("email sent", "message_id", messageID, "recipient", recipient)
	return messageID, nil
}
