package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issue-triage/pkg/cli/config"
	"github.com/secmon-lab/issue-triage/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/issue-triage/pkg/service/slack"
	"github.com/secmon-lab/issue-triage/pkg/utils/async"
	"github.com/slack-go/slack"
)

// WebhookPoster posts a message to a Slack response URL
type WebhookPoster func(ctx context.Context, url string, msg *slack.WebhookMessage) error

// Handler handles the Slack slash command endpoint
type Handler struct {
	slackConfig  *config.Slack
	triageUC     interfaces.Triage
	blockBuilder *slackSvc.BlockBuilder
	postWebhook  WebhookPoster
	timeout      time.Duration
}

// Option configures Handler
type Option func(*Handler)

// WithWebhookPoster replaces the function posting results to Slack
func WithWebhookPoster(poster WebhookPoster) Option {
	return func(h *Handler) {
		h.postWebhook = poster
	}
}

// WithTimeout bounds each asynchronous analysis
func WithTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.timeout = timeout
	}
}

// NewHandler creates a new Slack handler
func NewHandler(slackConfig *config.Slack, triageUC interfaces.Triage, opts ...Option) *Handler {
	h := &Handler{
		slackConfig:  slackConfig,
		triageUC:     triageUC,
		blockBuilder: slackSvc.NewBlockBuilder(),
		postWebhook:  slack.PostWebhookContext,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleCommand handles a slash command such as "/triage <issue text>".
// It acknowledges immediately and posts the triage record to the
// command's response URL when the analysis completes.
func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	if h.slackConfig == nil || !h.slackConfig.IsConfigured() {
		h.writeError(w, r.Context(), goerr.New("Slack not configured"), http.StatusServiceUnavailable)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r.Context(), goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.verifySlackSignature(r, body); err != nil {
		ctxlog.From(r.Context()).Warn("Invalid Slack signature", "error", err)
		h.writeError(w, r.Context(), goerr.Wrap(err, "invalid signature"), http.StatusUnauthorized)
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		h.writeError(w, r.Context(), goerr.Wrap(err, "failed to parse slash command"), http.StatusBadRequest)
		return
	}

	issueText := strings.TrimSpace(cmd.Text)
	if issueText == "" {
		h.writeMessage(w, r.Context(), fmt.Sprintf("Usage: %s <issue title, body and comments>", cmd.Command))
		return
	}
	if cmd.ResponseURL == "" {
		h.writeError(w, r.Context(), goerr.New("response_url is missing"), http.StatusBadRequest)
		return
	}

	ctxlog.From(r.Context()).Info("Slash command received",
		"command", cmd.Command,
		"user", cmd.UserID,
		"channel", cmd.ChannelID,
	)

	h.writeMessage(w, r.Context(), "Analyzing the issue...")

	async.Dispatch(r.Context(), func(ctx context.Context) error {
		return h.respond(ctx, cmd.ResponseURL, issueText)
	})
}

func (h *Handler) respond(ctx context.Context, responseURL, issueText string) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	record := h.triageUC.AnalyzeIssue(ctx, issueText)

	msg := &slack.WebhookMessage{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         h.blockBuilder.BuildFallbackText(record),
		Blocks: &slack.Blocks{
			BlockSet: h.blockBuilder.BuildTriageBlocks(issueText, record),
		},
	}

	// The analysis deadline must not cut off delivery of its result
	if err := h.postWebhook(context.WithoutCancel(ctx), responseURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post triage result to Slack")
	}
	return nil
}

// verifySlackSignature verifies the Slack request signature and rejects
// timestamps older than 5 minutes
func (h *Handler) verifySlackSignature(r *http.Request, body []byte) error {
	verifier, err := slack.NewSecretsVerifier(r.Header, h.slackConfig.SigningSecret)
	if err != nil {
		return goerr.Wrap(err, "failed to create secrets verifier",
			goerr.V("timestamp", r.Header.Get("X-Slack-Request-Timestamp")))
	}

	if _, err := verifier.Write(body); err != nil {
		return goerr.Wrap(err, "failed to hash request body")
	}

	if err := verifier.Ensure(); err != nil {
		return goerr.Wrap(err, "signature mismatch")
	}

	return nil
}

// writeMessage writes an ephemeral slash command response
func (h *Handler) writeMessage(w http.ResponseWriter, ctx context.Context, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(&slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}); err != nil {
		ctxlog.From(ctx).Error("Failed to write slash command response", "error", err)
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, ctx context.Context, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	}); encErr != nil {
		ctxlog.From(ctx).Error("Failed to write error response", "error", encErr)
	}
}
