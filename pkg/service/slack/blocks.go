package slack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/secmon-lab/issue-triage/pkg/domain/model"
	"github.com/slack-go/slack"
)

// maxSectionText is the Slack limit of a section text object
const maxSectionText = 3000

// GetPriorityEmoji returns emoji based on the leading digit of a priority score
func GetPriorityEmoji(priorityScore string) string {
	s := strings.TrimSpace(priorityScore)
	if s == "" {
		return "❓"
	}
	switch s[0] {
	case '5':
		return "🚨" // Critical
	case '4':
		return "🔥"
	case '3':
		return "⚠️"
	case '2':
		return "ℹ️"
	case '1':
		return "✅" // Low
	default:
		return "❓"
	}
}

// GetTypeEmoji returns emoji for an issue type
func GetTypeEmoji(issueType string) string {
	switch model.IssueType(issueType) {
	case model.IssueTypeBug:
		return "🐛"
	case model.IssueTypeFeatureRequest:
		return "✨"
	case model.IssueTypeDocumentation:
		return "📝"
	case model.IssueTypeQuestion:
		return "❔"
	default:
		return "📌"
	}
}

// BlockBuilder provides methods to build Slack message blocks
type BlockBuilder struct{}

// NewBlockBuilder creates a new BlockBuilder instance
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

// BuildTriageBlocks renders a triage record. issueText is quoted in a
// context block so the channel can see what was analyzed.
func (b *BlockBuilder) BuildTriageBlocks(issueText string, rec model.TriageRecord) []slack.Block {
	labels := "_none_"
	if len(rec.SuggestedLabels) > 0 {
		quoted := make([]string, 0, len(rec.SuggestedLabels))
		for _, label := range rec.SuggestedLabels {
			quoted = append(quoted, "`"+label+"`")
		}
		labels = strings.Join(quoted, " ")
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "Issue triage", true, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, truncate(rec.Summary, maxSectionText), false, false),
			nil, nil,
		),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Type:*\n%s %s", GetTypeEmoji(rec.Type), rec.Type), false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Priority:*\n%s %s", GetPriorityEmoji(rec.PriorityScore), truncate(rec.PriorityScore, 1900)), false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Labels:*\n%s", labels), false, false),
		}, nil),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				truncate("*Potential impact:*\n"+rec.PotentialImpact, maxSectionText), false, false),
			nil, nil,
		),
	}

	if text := strings.TrimSpace(issueText); text != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, truncate("> "+text, 2000), false, false),
		))
	}

	return blocks
}

// BuildFallbackText returns the plain text used for notifications
func (b *BlockBuilder) BuildFallbackText(rec model.TriageRecord) string {
	return fmt.Sprintf("[%s] %s", rec.Type, rec.Summary)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}
