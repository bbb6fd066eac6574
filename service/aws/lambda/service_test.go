package awslambda

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const functionARN = "arn:aws:lambda:ap-southeast-1:123456789012:function:daily-cost-report"

func TestGetAccountInfo(t *testing.T) {
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		InvokedFunctionArn: functionARN,
	})

	info, err := NewService().GetAccountInfo(ctx)
	require.NoError(t, err)

	assert.Equal(t, "123456789012", info.AccountID)
	assert.Equal(t, functionARN, info.AccountName)
}

func TestGetAccountInfo_NoContext(t *testing.T) {
	_, err := NewService().GetAccountInfo(context.Background())

	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindConfiguration))
}

func TestAccountFromARN(t *testing.T) {
	tests := []struct {
		name    string
		arn     string
		account string
		wantErr bool
	}{
		{name: "function", arn: functionARN, account: "123456789012"},
		{name: "alias", arn: functionARN + ":prod", account: "123456789012"},
		{name: "not an arn", arn: "daily-cost-report", wantErr: true},
		{name: "no account", arn: "arn:aws:s3:::my-bucket", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := AccountFromARN(tt.arn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.account, info.AccountID)
		})
	}
}
