package awslambda

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/elC0mpa/aws-cost-report/model"
)

var errNoLambdaContext = errors.New("no lambda context in invocation")

func NewService() *service {
	return &service{}
}

// GetAccountInfo derives the account from the invoked function ARN carried by ctx.
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return nil, model.NewError(model.KindConfiguration, "resolve account", errNoLambdaContext)
	}

	info, err := AccountFromARN(lc.InvokedFunctionArn)
	if err != nil {
		return nil, model.NewError(model.KindConfiguration, "resolve account", err)
	}
	return info, nil
}

// AccountFromARN parses an ARN such as arn:aws:lambda:ap-southeast-1:123456789012:function:cost-report.
func AccountFromARN(functionARN string) (*model.AccountInfo, error) {
	parsed, err := arn.Parse(functionARN)
	if err != nil {
		return nil, fmt.Errorf("parse function arn: %w", err)
	}
	if parsed.AccountID == "" {
		return nil, fmt.Errorf("function arn %q has no account id", functionARN)
	}

	return &model.AccountInfo{
		Provider:    "aws",
		AccountID:   parsed.AccountID,
		AccountName: functionARN,
	}, nil
}
