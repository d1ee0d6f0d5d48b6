package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/issue-triage/pkg/domain/interfaces"
	"github.com/secmon-lab/issue-triage/pkg/domain/model"
)

// maxRequestBody bounds the size of a triage request
const maxRequestBody = 1 << 20

// TriageHandler serves the triage API
type TriageHandler struct {
	triageUC interfaces.Triage
	timeout  time.Duration
}

// NewTriageHandler creates a new TriageHandler. A zero timeout disables
// the per-request bound.
func NewTriageHandler(triageUC interfaces.Triage, timeout time.Duration) *TriageHandler {
	return &TriageHandler{
		triageUC: triageUC,
		timeout:  timeout,
	}
}

// TriageRequest is the body of POST /api/triage. IssueText takes
// precedence over the structured fields.
type TriageRequest struct {
	IssueText string   `json:"issue_text"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Comments  []string `json:"comments"`
}

// HandleTriage analyzes an issue and responds with its triage record.
// The analysis never fails; only malformed requests are rejected.
func (h *TriageHandler) HandleTriage(w http.ResponseWriter, r *http.Request) {
	var req TriageRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := decoder.Decode(&req); err != nil {
		ctxlog.From(r.Context()).Debug("Invalid triage request", "error", err)
		writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	issue := model.Issue{Title: req.Title, Body: req.Body, Comments: req.Comments}
	if strings.TrimSpace(req.IssueText) == "" && issue.IsEmpty() {
		writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": "issue text is required"})
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	var record model.TriageRecord
	if strings.TrimSpace(req.IssueText) != "" {
		record = h.triageUC.AnalyzeIssue(ctx, req.IssueText)
	} else {
		record = h.triageUC.AnalyzeIssueInput(ctx, issue)
	}

	writeJSON(w, r, http.StatusOK, record)
}
