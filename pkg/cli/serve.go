package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issue-triage/pkg/cli/config"
	controller "github.com/secmon-lab/issue-triage/pkg/controller/http"
	"github.com/secmon-lab/issue-triage/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		slackCfg  config.Slack
		geminiCfg config.Gemini
	)

	flags := joinFlags(
		serverCfg.Flags(),
		slackCfg.Flags(),
		geminiCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting issue-triage server",
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
				slog.Any("gemini", geminiCfg),
			)

			// The LLM client is built on the first request; a missing API key
			// is reported in the triage records rather than failing startup
			triageUC := usecase.NewTriage(geminiCfg.Configure(ctx))

			if !slackCfg.IsConfigured() {
				logger.Warn("Slack not configured - slash command endpoint is disabled")
			}

			server := controller.NewServer(ctx, serverCfg.Addr, triageUC, &slackCfg, serverCfg.RequestTimeout)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
