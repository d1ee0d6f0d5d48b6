package slack_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issue-triage/pkg/cli/config"
	"github.com/secmon-lab/issue-triage/pkg/controller/slack"
	"github.com/secmon-lab/issue-triage/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/issue-triage/pkg/domain/model"
	slackgo "github.com/slack-go/slack"
)

const testSigningSecret = "test-secret"

func signedRequest(t *testing.T, form url.Values, secret string, ts time.Time) *http.Request {
	t.Helper()
	body := form.Encode()
	timestamp := strconv.FormatInt(ts.Unix(), 10)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("v0:%s:%s", timestamp, body)))

	req := httptest.NewRequest(http.MethodPost, "/hooks/slack/command", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
	return req
}

func commandForm(text string) url.Values {
	return url.Values{
		"command":      {"/triage"},
		"text":         {text},
		"user_id":      {"U123"},
		"channel_id":   {"C123"},
		"response_url": {"https://hooks.slack.test/commands/1"},
	}
}

func newTriageMock() *mocks.TriageMock {
	return &mocks.TriageMock{
		AnalyzeIssueFunc: func(ctx context.Context, issueText string) model.TriageRecord {
			return model.TriageRecord{
				Summary:         "Login crash",
				Type:            "bug",
				PriorityScore:   "5 - Critical",
				SuggestedLabels: []string{"crash"},
				PotentialImpact: "Everyone",
			}
		},
	}
}

func TestHandleCommand(t *testing.T) {
	cfg := &config.Slack{SigningSecret: testSigningSecret}

	t.Run("analyzes and posts result to response URL", func(t *testing.T) {
		type posted struct {
			url string
			msg *slackgo.WebhookMessage
		}
		postedCh := make(chan posted, 1)
		triageUC := newTriageMock()
		h := slack.NewHandler(cfg, triageUC, slack.WithWebhookPoster(
			func(ctx context.Context, url string, msg *slackgo.WebhookMessage) error {
				postedCh <- posted{url: url, msg: msg}
				return nil
			}))

		w := httptest.NewRecorder()
		h.HandleCommand(w, signedRequest(t, commandForm("Title: Login crashes"), testSigningSecret, time.Now()))

		gt.Equal(t, w.Code, http.StatusOK)
		var ack map[string]any
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
		gt.Equal(t, ack["response_type"], any("ephemeral"))

		select {
		case p := <-postedCh:
			gt.Equal(t, p.url, "https://hooks.slack.test/commands/1")
			gt.Equal(t, p.msg.ResponseType, "in_channel")
			gt.Equal(t, p.msg.Text, "[bug] Login crash")
			gt.NotNil(t, p.msg.Blocks)
			gt.Equal(t, len(p.msg.Blocks.BlockSet), 5)
		case <-time.After(time.Second):
			t.Fatal("triage result was not posted")
		}

		calls := triageUC.AnalyzeIssueCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].IssueText, "Title: Login crashes")
	})

	t.Run("empty text returns usage", func(t *testing.T) {
		triageUC := newTriageMock()
		h := slack.NewHandler(cfg, triageUC)

		w := httptest.NewRecorder()
		h.HandleCommand(w, signedRequest(t, commandForm("  "), testSigningSecret, time.Now()))

		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains("Usage: /triage")
		gt.Equal(t, len(triageUC.AnalyzeIssueCalls()), 0)
	})

	t.Run("invalid signature is rejected", func(t *testing.T) {
		h := slack.NewHandler(cfg, newTriageMock())

		w := httptest.NewRecorder()
		h.HandleCommand(w, signedRequest(t, commandForm("issue"), "wrong-secret", time.Now()))
		gt.Equal(t, w.Code, http.StatusUnauthorized)
	})

	t.Run("stale timestamp is rejected", func(t *testing.T) {
		h := slack.NewHandler(cfg, newTriageMock())

		w := httptest.NewRecorder()
		h.HandleCommand(w, signedRequest(t, commandForm("issue"), testSigningSecret, time.Now().Add(-10*time.Minute)))
		gt.Equal(t, w.Code, http.StatusUnauthorized)
	})

	t.Run("missing signature headers are rejected", func(t *testing.T) {
		triageUC := newTriageMock()
		h := slack.NewHandler(cfg, triageUC)

		req := signedRequest(t, commandForm("issue"), testSigningSecret, time.Now())
		req.Header.Del("X-Slack-Signature")

		w := httptest.NewRecorder()
		h.HandleCommand(w, req)
		gt.Equal(t, w.Code, http.StatusUnauthorized)
		gt.Equal(t, len(triageUC.AnalyzeIssueCalls()), 0)
	})

	t.Run("not configured", func(t *testing.T) {
		h := slack.NewHandler(&config.Slack{}, newTriageMock())

		w := httptest.NewRecorder()
		h.HandleCommand(w, signedRequest(t, commandForm("issue"), testSigningSecret, time.Now()))
		gt.Equal(t, w.Code, http.StatusServiceUnavailable)
	})
}
