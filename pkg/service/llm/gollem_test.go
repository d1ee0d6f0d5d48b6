package llm_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/mock"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issue-triage/pkg/service/llm"
)

func TestGollemClient_GenerateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("contents are sent as text inputs", func(t *testing.T) {
		var received []gollem.Input
		mockClient := &mock.LLMClientMock{
			NewSessionFunc: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mock.SessionMock{
					GenerateContentFunc: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						received = input
						return &gollem.Response{Texts: []string{`{"summary":`, ` "s"}`}}, nil
					},
				}, nil
			},
		}

		text, err := llm.NewGollemClient(mockClient).GenerateContent(ctx, "system", "prompt")
		gt.NoError(t, err)
		gt.Equal(t, text, `{"summary": "s"}`)
		gt.Equal(t, len(received), 2)
		gt.Equal(t, received[0], gollem.Input(gollem.Text("system")))
		gt.Equal(t, received[1], gollem.Input(gollem.Text("prompt")))
	})

	t.Run("session error", func(t *testing.T) {
		mockClient := &mock.LLMClientMock{
			NewSessionFunc: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return nil, goerr.New("quota exceeded")
			},
		}

		_, err := llm.NewGollemClient(mockClient).GenerateContent(ctx, "prompt")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, llm.ErrTagProviderCall))
	})

	t.Run("empty response", func(t *testing.T) {
		mockClient := &mock.LLMClientMock{
			NewSessionFunc: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mock.SessionMock{
					GenerateContentFunc: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return &gollem.Response{Texts: []string{}}, nil
					},
				}, nil
			},
		}

		_, err := llm.NewGollemClient(mockClient).GenerateContent(ctx, "prompt")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, llm.ErrTagEmptyResponse))
	})
}
