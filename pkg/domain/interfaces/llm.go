package interfaces

//go:generate moq -out mocks/llm_mock.go -pkg mocks . LLMClient LLMClientProvider

import (
	"context"
)

// LLMClient generates a text completion from an ordered list of contents.
// The model identifier is bound when the client is constructed.
type LLMClient interface {
	GenerateContent(ctx context.Context, contents ...string) (string, error)
}

// LLMClientProvider hands out an LLMClient, constructing it on first use
type LLMClientProvider interface {
	Client(ctx context.Context) (LLMClient, error)
}
