package async_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issue-triage/pkg/utils/async"
)

func waitOrFail(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Async handler did not complete within timeout")
	}
}

func TestDispatch(t *testing.T) {
	t.Run("Execute handler asynchronously", func(t *testing.T) {
		done := make(chan struct{})
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			close(done)
			return nil
		})
		waitOrFail(t, done)
	})

	t.Run("Handle errors in async handler", func(t *testing.T) {
		done := make(chan struct{})
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer close(done)
			return goerr.New("test error")
		})
		waitOrFail(t, done)
	})

	t.Run("Recover from panic in async handler", func(t *testing.T) {
		done := make(chan struct{})
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer close(done)
			panic("test panic")
		})
		waitOrFail(t, done)
	})

	t.Run("Caller cancellation does not reach handler", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		release := make(chan struct{})
		done := make(chan struct{})
		var handlerErr error

		async.Dispatch(ctx, func(ctx context.Context) error {
			defer close(done)
			<-release
			handlerErr = ctx.Err()
			return nil
		})

		cancel()
		close(release)
		waitOrFail(t, done)
		gt.NoError(t, handlerErr)
	})
}
