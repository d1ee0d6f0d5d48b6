package llm

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issue-triage/pkg/domain/interfaces"
)

// Factory constructs an LLM client. It returns an error tagged with
// ErrTagCredentialMissing when no credential is configured.
type Factory func(ctx context.Context) (interfaces.LLMClient, error)

// Provider lazily constructs an LLM client and reuses it afterwards.
// A successfully constructed client is kept for the lifetime of the
// Provider; failed attempts are not cached and will be retried.
type Provider struct {
	factory Factory

	mu     sync.Mutex
	client interfaces.LLMClient
}

var _ interfaces.LLMClientProvider = &Provider{}

// NewProvider creates a new Provider
func NewProvider(factory Factory) *Provider {
	return &Provider{factory: factory}
}

// NewStaticProvider creates a Provider that always returns client
func NewStaticProvider(client interfaces.LLMClient) *Provider {
	return &Provider{client: client}
}

// Client returns the cached client or constructs one
func (p *Provider) Client(ctx context.Context) (interfaces.LLMClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if p.factory == nil {
		return nil, goerr.New("LLM client is not configured", goerr.T(ErrTagCredentialMissing))
	}

	client, err := p.factory(ctx)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, goerr.New("LLM client is not configured", goerr.T(ErrTagCredentialMissing))
	}

	p.client = client
	return client, nil
}

// CredentialResolver resolves an API key. An empty key without error
// means no credential is configured.
type CredentialResolver interface {
	Resolve() (string, error)
}

// NewGenAIFactory returns a Factory building a GenAIClient from the API key
// resolved at construction time
func NewGenAIFactory(resolver CredentialResolver, model string) Factory {
	return func(ctx context.Context) (interfaces.LLMClient, error) {
		apiKey, err := resolver.Resolve()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve API key")
		}
		if apiKey == "" {
			return nil, goerr.New("Google API key is not configured",
				goerr.T(ErrTagCredentialMissing))
		}
		return NewGenAIClient(ctx, apiKey, model)
	}
}
