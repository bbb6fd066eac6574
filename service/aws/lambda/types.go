package awslambda

import (
	"context"

	"github.com/elC0mpa/aws-cost-report/model"
)

type service struct{}

type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}
