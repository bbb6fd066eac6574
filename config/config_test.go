package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elC0mpa/aws-cost-report/config"
	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "")
	t.Setenv("RECIPIENT_EMAIL", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("SES_REGION", "")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "ap-southeast-1", cfg.AWSRegion)
	assert.Equal(t, "ap-southeast-1", cfg.SESRegion)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "none", cfg.OTELExporterType)
	assert.False(t, cfg.HasSlack())
	assert.False(t, cfg.HasFailureWebhook())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "reports@example.com")
	t.Setenv("RECIPIENT_EMAIL", "finance@example.com")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("SES_REGION", "us-east-1")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "reports@example.com", cfg.SenderEmail)
	assert.Equal(t, "finance@example.com", cfg.RecipientEmail)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, "us-east-1", cfg.SESRegion)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("SES_REGION", "")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	data := []byte(`
sender_email: file@example.com
aws_region: us-west-2
slack_webhook_url: https://hooks.slack.com/services/T/B/X
`)
	require.NoError(t, os.WriteFile(cfgPath, data, 0o644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "file@example.com", cfg.SenderEmail)
	assert.Equal(t, "us-west-2", cfg.AWSRegion)
	assert.Equal(t, "us-west-2", cfg.SESRegion)
	assert.True(t, cfg.HasSlack())
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("invalid: [yaml"), 0o644))

	_, err := config.Load(cfgPath)
	assert.Error(t, err)
}

func TestValidate_MissingAddresses(t *testing.T) {
	cfg := &config.Config{SenderEmail: "reports@example.com"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindConfiguration))
	assert.Contains(t, err.Error(), "RECIPIENT_EMAIL")
	assert.NotContains(t, err.Error(), "SENDER_EMAIL")

	err = (&config.Config{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SENDER_EMAIL and RECIPIENT_EMAIL")
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		logger, err := config.NewLogger(&config.Config{LogLevel: level, LogFormat: "text"})
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}

	_, err := config.NewLogger(&config.Config{LogLevel: "verbose"})
	assert.ErrorIs(t, err, config.ErrUnknownLogLevel)
}
