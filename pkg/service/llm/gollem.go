package llm

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// GollemClient adapts a gollem.LLMClient to interfaces.LLMClient
type GollemClient struct {
	llmClient gollem.LLMClient
}

// NewGollemClient creates a new GollemClient
func NewGollemClient(llmClient gollem.LLMClient) *GollemClient {
	return &GollemClient{
		llmClient: llmClient,
	}
}

// GenerateContent opens a fresh session, sends each content as a text
// input and joins the response texts
func (c *GollemClient) GenerateContent(ctx context.Context, contents ...string) (string, error) {
	session, err := c.llmClient.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session", goerr.T(ErrTagProviderCall))
	}

	inputs := make([]gollem.Input, 0, len(contents))
	for _, text := range contents {
		inputs = append(inputs, gollem.Text(text))
	}

	response, err := session.GenerateContent(ctx, inputs...)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate LLM response", goerr.T(ErrTagProviderCall))
	}

	if response == nil || len(response.Texts) == 0 {
		return "", goerr.New("empty response from LLM", goerr.T(ErrTagEmptyResponse))
	}

	return strings.Join(response.Texts, ""), nil
}
