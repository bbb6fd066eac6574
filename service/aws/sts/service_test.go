package awssts

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	out *sts.GetCallerIdentityOutput
	err error
}

func (f fakeAPI) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return f.out, f.err
}

func TestGetAccountInfo(t *testing.T) {
	svc := NewServiceWithClient(fakeAPI{out: &sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:user/reporter"),
	}})

	info, err := svc.GetAccountInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "aws", info.Provider)
	assert.Equal(t, "123456789012", info.AccountID)
	assert.Equal(t, "arn:aws:iam::123456789012:user/reporter", info.AccountName)
}

func TestGetAccountInfo_Error(t *testing.T) {
	cause := errors.New("ExpiredToken")
	_, err := NewServiceWithClient(fakeAPI{err: cause}).GetAccountInfo(context.Background())

	assert.ErrorIs(t, err, cause)
	assert.True(t, model.IsKind(err, model.KindQuery))
}
