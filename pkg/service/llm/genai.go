package llm

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured
const DefaultModel = "gemini-flash-lite-latest"

// GenAIClient calls the Gemini Developer API with an API key
type GenAIClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient creates a new GenAIClient
func NewGenAIClient(ctx context.Context, apiKey, model string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, goerr.New("GenAI API key is required", goerr.T(ErrTagCredentialMissing))
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GenAI client")
	}

	return &GenAIClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateContent sends all contents as parts of a single user turn and
// returns the concatenated response text
func (c *GenAIClient) GenerateContent(ctx context.Context, contents ...string) (string, error) {
	parts := make([]*genai.Part, 0, len(contents))
	for _, text := range contents {
		parts = append(parts, genai.NewPartFromText(text))
	}

	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		nil,
	)
	if err != nil {
		return "", goerr.Wrap(err, "GenAI generate content failed",
			goerr.V("model", c.model),
			goerr.T(ErrTagProviderCall))
	}

	return resp.Text(), nil
}
