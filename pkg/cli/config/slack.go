package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	SigningSecret string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret for slash command verification",
			Category:    "Slack",
			Sources:     cli.EnvVars("TRIAGE_SLACK_SIGNING_SECRET"),
			Destination: &s.SigningSecret,
		},
	}
}

// IsConfigured checks if Slack is configured
func (s *Slack) IsConfigured() bool {
	return s.SigningSecret != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_signing_secret", s.SigningSecret != ""),
	)
}
