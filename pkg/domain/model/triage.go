package model

import (
	"encoding/json"
)

// Default values applied by the sanitizer when a key is missing
const (
	DefaultSummary         = "No summary provided"
	DefaultType            = "other"
	DefaultPriorityScore   = "1 - Default score"
	DefaultPotentialImpact = "Unknown"
)

// Values used by fallback records
const (
	FallbackMessage         = "Invalid LLM output"
	FallbackPriorityScore   = "1 - Unable to determine priority due to error"
	FallbackPotentialImpact = "LLM failed to return valid JSON"
)

// MaxSuggestedLabels is the upper bound of SuggestedLabels
const MaxSuggestedLabels = 3

// IssueType is the intended classification of an issue
type IssueType string

const (
	IssueTypeBug            IssueType = "bug"
	IssueTypeFeatureRequest IssueType = "feature_request"
	IssueTypeDocumentation  IssueType = "documentation"
	IssueTypeQuestion       IssueType = "question"
	IssueTypeOther          IssueType = "other"
)

// IsKnown returns true if the type is one of the documented values.
// The sanitizer accepts any string; this is for presentation only.
func (t IssueType) IsKnown() bool {
	switch t {
	case IssueTypeBug, IssueTypeFeatureRequest, IssueTypeDocumentation, IssueTypeQuestion, IssueTypeOther:
		return true
	}
	return false
}

// TriageRecord is the normalized classification result of an issue
type TriageRecord struct {
	Summary         string   `json:"summary" yaml:"summary"`
	Type            string   `json:"type" yaml:"type"`
	PriorityScore   string   `json:"priority_score" yaml:"priority_score"`
	SuggestedLabels []string `json:"suggested_labels" yaml:"suggested_labels"`
	PotentialImpact string   `json:"potential_impact" yaml:"potential_impact"`
}

// NewFallback builds a schema-complete record describing a failure.
// An empty message is replaced with FallbackMessage.
func NewFallback(message string) TriageRecord {
	if message == "" {
		message = FallbackMessage
	}
	return TriageRecord{
		Summary:         message,
		Type:            string(IssueTypeOther),
		PriorityScore:   FallbackPriorityScore,
		SuggestedLabels: []string{},
		PotentialImpact: FallbackPotentialImpact,
	}
}

// MarshalJSON always emits suggested_labels as an array
func (r TriageRecord) MarshalJSON() ([]byte, error) {
	type alias TriageRecord
	out := alias(r)
	if out.SuggestedLabels == nil {
		out.SuggestedLabels = []string{}
	}
	return json.Marshal(out)
}

// ToMap converts the record into the untyped form produced by JSON decoding
func (r TriageRecord) ToMap() map[string]any {
	labels := make([]any, 0, len(r.SuggestedLabels))
	for _, label := range r.SuggestedLabels {
		labels = append(labels, label)
	}
	return map[string]any{
		"summary":          r.Summary,
		"type":             r.Type,
		"priority_score":   r.PriorityScore,
		"suggested_labels": labels,
		"potential_impact": r.PotentialImpact,
	}
}
