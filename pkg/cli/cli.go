package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issue-triage/pkg/cli/config"
	"github.com/secmon-lab/issue-triage/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	if err := NewApp(os.Stdin, os.Stdout).Run(ctx, args); err != nil {
		apperr.Handle(ctx, err)
		return goerr.Wrap(err, "CLI execution failed")
	}
	return nil
}

// NewApp builds the root command reading issues from stdin and writing
// results to stdout
func NewApp(stdin io.Reader, stdout io.Writer) *cli.Command {
	var loggerCfg config.Logger

	return &cli.Command{
		Name:    "issue-triage",
		Usage:   "Classify issue reports into triage records with Gemini",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Reader:  stdin,
		Writer:  stdout,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdAnalyze(),
			cmdServe(),
		},
	}
}
