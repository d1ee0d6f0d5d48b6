package usecase

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issue-triage/pkg/domain/interfaces"
	"github.com/secmon-lab/issue-triage/pkg/domain/model"
	"github.com/secmon-lab/issue-triage/pkg/service/llm"
)

//go:embed templates/*.md
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{"join": strings.Join}).
	ParseFS(templateFS, "templates/*.md"))

// Fallback message prefixes for each failure stage
const (
	MsgCredentialMissing = "Server Error: Google API Key not configured. Please set GOOGLE_API_KEY or add it to the secrets file."
	PrefixClientInit     = "Client Init Error: "
	PrefixPrompt         = "Prompt Error: "
	PrefixProviderCall   = "Gemini API Error: "
	PrefixInternal       = "Internal Error: "
)

// Triage analyzes issue reports with an LLM
type Triage struct {
	provider interfaces.LLMClientProvider
}

var _ interfaces.Triage = &Triage{}

// NewTriage creates a new Triage use case
func NewTriage(provider interfaces.LLMClientProvider) *Triage {
	return &Triage{
		provider: provider,
	}
}

type systemInstructionData struct {
	IssueTypes []string
	MaxLabels  int
}

type issuePromptData struct {
	IssueText string
}

// AnalyzeIssueInput formats a structured issue and analyzes it
func (t *Triage) AnalyzeIssueInput(ctx context.Context, issue model.Issue) model.TriageRecord {
	return t.AnalyzeIssue(ctx, issue.Text())
}

// AnalyzeIssue classifies issueText. It never fails: every failure is
// returned as a fallback record whose summary describes the failure.
func (t *Triage) AnalyzeIssue(ctx context.Context, issueText string) (record model.TriageRecord) {
	logger := ctxlog.From(ctx).With("analysis_id", uuid.NewString())
	ctx = ctxlog.With(ctx, logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in issue analysis", "recover", r)
			record = model.NewFallback(fmt.Sprintf("%s%v", PrefixInternal, r))
		}
	}()

	client, err := t.provider.Client(ctx)
	if err != nil || client == nil {
		if err == nil || goerr.HasTag(err, llm.ErrTagCredentialMissing) {
			logger.Warn("LLM client is not configured", "error", err)
			return model.NewFallback(MsgCredentialMissing)
		}
		logger.Warn("Failed to initialize LLM client", "error", err)
		return model.NewFallback(PrefixClientInit + err.Error())
	}

	systemInstruction, prompt, err := renderPrompts(issueText)
	if err != nil {
		logger.Error("Failed to render prompts", "error", err)
		return model.NewFallback(PrefixPrompt + err.Error())
	}

	text, err := client.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		logger.Warn("LLM call failed", "error", err)
		return model.NewFallback(PrefixProviderCall + err.Error())
	}

	extraction := llm.ExtractJSON(text)
	if extraction.IsFallback() {
		logger.Warn("Failed to extract JSON from LLM response",
			"reason", extraction.Fallback.Summary,
			"response", text,
		)
	}

	record = extraction.Record()
	logger.Debug("Issue analyzed",
		"type", record.Type,
		"priority_score", record.PriorityScore,
		"labels", record.SuggestedLabels,
	)
	return record
}

func renderPrompts(issueText string) (string, string, error) {
	issueTypes := []string{
		string(model.IssueTypeBug),
		string(model.IssueTypeFeatureRequest),
		string(model.IssueTypeDocumentation),
		string(model.IssueTypeQuestion),
		string(model.IssueTypeOther),
	}

	var system bytes.Buffer
	if err := templates.ExecuteTemplate(&system, "system_instruction.md", systemInstructionData{
		IssueTypes: issueTypes,
		MaxLabels:  model.MaxSuggestedLabels,
	}); err != nil {
		return "", "", goerr.Wrap(err, "failed to execute system instruction template")
	}

	var prompt bytes.Buffer
	if err := templates.ExecuteTemplate(&prompt, "issue_prompt.md", issuePromptData{
		IssueText: issueText,
	}); err != nil {
		return "", "", goerr.Wrap(err, "failed to execute issue prompt template")
	}

	return system.String(), prompt.String(), nil
}
