package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr           string
	RequestTimeout time.Duration
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("TRIAGE_ADDR"),
			Destination: &s.Addr,
		},
		&cli.DurationFlag{
			Name:        "request-timeout",
			Usage:       "Upper bound of a single issue analysis",
			Value:       60 * time.Second,
			Sources:     cli.EnvVars("TRIAGE_REQUEST_TIMEOUT"),
			Destination: &s.RequestTimeout,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Duration("request_timeout", s.RequestTimeout),
	)
}
