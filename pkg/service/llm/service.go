// Package llm turns raw model completions into triage records and adapts
// model provider SDKs to interfaces.LLMClient.
package llm

import (
	"github.com/m-mizutani/goerr/v2"
)

// Error tags for categorization
var (
	ErrTagCredentialMissing = goerr.NewTag("credential_missing")
	ErrTagEmptyResponse     = goerr.NewTag("empty_response")
	ErrTagProviderCall      = goerr.NewTag("provider_call")
)

// Diagnostic messages of extraction fallbacks
const (
	MsgNoJSONFound    = "No JSON found in response"
	MsgJSONParseError = "JSON parse error"
)
