package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a goroutine with a context detached from the
// caller's cancellation, so HTTP handlers can acknowledge immediately
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(stack),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// newBackgroundContext keeps the logger of ctx but drops its deadline
func newBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.WithoutCancel(ctx), ctxlog.From(ctx))
}
