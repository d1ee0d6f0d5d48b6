package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/secmon-lab/issue-triage/pkg/domain/interfaces"
	"github.com/secmon-lab/issue-triage/pkg/service/credential"
	"github.com/secmon-lab/issue-triage/pkg/service/llm"
	"github.com/urfave/cli/v3"
)

// Gemini holds Gemini configuration. With Project set, Vertex AI is used
// through gollem with Application Default Credentials; otherwise the
// Gemini Developer API is used with an API key.
type Gemini struct {
	APIKey      string
	SecretsFile string
	Model       string
	Project     string
	Location    string
}

// Flags returns CLI flags for Gemini configuration
func (g *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "API key for the Gemini Developer API",
			Category:    "Gemini",
			Sources:     cli.EnvVars("GOOGLE_API_KEY", "TRIAGE_GEMINI_API_KEY"),
			Destination: &g.APIKey,
		},
		&cli.StringFlag{
			Name:        "secrets-file",
			Usage:       "TOML secrets file consulted for GOOGLE_API_KEY when no API key is given",
			Category:    "Gemini",
			Value:       ".streamlit/secrets.toml",
			Sources:     cli.EnvVars("TRIAGE_SECRETS_FILE"),
			Destination: &g.SecretsFile,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model name",
			Category:    "Gemini",
			Value:       llm.DefaultModel,
			Sources:     cli.EnvVars("TRIAGE_GEMINI_MODEL"),
			Destination: &g.Model,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "GCP project ID to use Gemini on Vertex AI instead of the API key",
			Category:    "Gemini",
			Sources:     cli.EnvVars("TRIAGE_GEMINI_PROJECT"),
			Destination: &g.Project,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Vertex AI location",
			Category:    "Gemini",
			Value:       "us-central1",
			Sources:     cli.EnvVars("TRIAGE_GEMINI_LOCATION"),
			Destination: &g.Location,
		},
	}
}

// Configure returns a provider that constructs the LLM client on first use.
// Construction errors surface when a triage is requested, not here.
func (g *Gemini) Configure(ctx context.Context) *llm.Provider {
	if g.UseVertex() {
		ctxlog.From(ctx).Info("Using Gemini on Vertex AI",
			slog.String("project", g.Project),
			slog.String("location", g.Location),
			slog.String("model", g.Model),
		)
		return llm.NewProvider(g.vertexFactory())
	}

	ctxlog.From(ctx).Info("Using Gemini Developer API", slog.String("model", g.Model))
	return llm.NewProvider(llm.NewGenAIFactory(g.Resolver(), g.Model))
}

// Resolver returns the API key resolver
func (g *Gemini) Resolver() *credential.Resolver {
	return &credential.Resolver{
		Value:       g.APIKey,
		SecretsFile: g.SecretsFile,
		SecretsKey:  credential.DefaultSecretsKey,
	}
}

func (g *Gemini) vertexFactory() llm.Factory {
	return func(ctx context.Context) (interfaces.LLMClient, error) {
		client, err := gemini.New(ctx, g.Project, g.Location, gemini.WithModel(g.Model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Vertex AI client",
				goerr.V("project", g.Project),
				goerr.V("location", g.Location))
		}
		return llm.NewGollemClient(client), nil
	}
}

// UseVertex checks if Vertex AI is configured
func (g *Gemini) UseVertex() bool {
	return g.Project != ""
}

// LogValue returns structured log value
func (g Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_api_key", g.APIKey != ""),
		slog.String("secrets_file", g.SecretsFile),
		slog.String("model", g.Model),
		slog.String("project", g.Project),
		slog.String("location", g.Location),
	)
}
