package interfaces

//go:generate moq -out mocks/triage_mock.go -pkg mocks . Triage

import (
	"context"

	"github.com/secmon-lab/issue-triage/pkg/domain/model"
)

// Triage classifies issue reports. Implementations never fail: every
// failure is converted into a fallback record.
type Triage interface {
	AnalyzeIssue(ctx context.Context, issueText string) model.TriageRecord
	AnalyzeIssueInput(ctx context.Context, issue model.Issue) model.TriageRecord
}
