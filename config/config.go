package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds environment-based configuration for the cost report.
type Config struct {
	// Mail
	SenderEmail    string `mapstructure:"sender_email"`
	RecipientEmail string `mapstructure:"recipient_email"`

	// AWS
	AWSRegion  string `mapstructure:"aws_region"`
	SESRegion  string `mapstructure:"ses_region"`
	AWSProfile string `mapstructure:"aws_profile"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Failure notifications
	SlackWebhookURL      string `mapstructure:"slack_webhook_url"`
	SlackChannel         string `mapstructure:"slack_channel"`
	FailureWebhookURL    string `mapstructure:"failure_webhook_url"`
	FailureWebhookSecret string `mapstructure:"failure_webhook_secret"`

	// Observability
	OTELExporterType     string `mapstructure:"otel_exporter_type"`
	OTELExporterEndpoint string `mapstructure:"otel_exporter_endpoint"`
}

var defaults = map[string]any{
	"sender_email":           "",
	"recipient_email":        "",
	"aws_region":             "ap-southeast-1",
	"ses_region":             "",
	"aws_profile":            "",
	"log_level":              "info",
	"log_format":             "json",
	"slack_webhook_url":      "",
	"slack_channel":          "",
	"failure_webhook_url":    "",
	"failure_webhook_secret": "",
	"otel_exporter_type":     "none",
	"otel_exporter_endpoint": "localhost:4317",
}

// Load reads configuration from the environment and, when cfgFile is set, from that file.
// Environment variables take precedence over the file.
func Load(cfgFile string) (*Config, error) {
	// Load .env file if present (non-fatal if missing)
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.SESRegion == "" {
		cfg.SESRegion = cfg.AWSRegion
	}

	return &cfg, nil
}

// Validate checks the settings a report run cannot start without.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.SenderEmail) == "" {
		missing = append(missing, "SENDER_EMAIL")
	}
	if strings.TrimSpace(c.RecipientEmail) == "" {
		missing = append(missing, "RECIPIENT_EMAIL")
	}
	if len(missing) > 0 {
		err := fmt.Errorf("%s must be set", strings.Join(missing, " and "))
		return model.NewError(model.KindConfiguration, "load configuration", err)
	}
	return nil
}

// HasSlack returns true if failed runs should be posted to Slack
func (c *Config) HasSlack() bool {
	return c.SlackWebhookURL != ""
}

// HasFailureWebhook returns true if failed runs should be posted to a generic webhook
func (c *Config) HasFailureWebhook() bool {
	return c.FailureWebhookURL != ""
}

// ErrUnknownLogLevel is returned by NewLogger for unsupported levels.
var ErrUnknownLogLevel = errors.New("unknown log level")

// NewLogger creates a structured logger from config.
func NewLogger(c *Config) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}

	var handler slog.Handler
	if c.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler), nil
}
