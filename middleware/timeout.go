package middleware

import (
	"context"
	"time"

	"github.com/xraph/portal/call"
)

// Timeout returns middleware that enforces a deadline on the target
// invocation. A context.WithTimeout wraps the handler call; when the
// deadline is exceeded the context is cancelled and a target honoring
// it should return context.DeadlineExceeded.
//
// The dispatcher defines no cancellation of its own; composing this
// middleware is how a caller opts in.
func Timeout(d time.Duration) Middleware {
	return func(ctx context.Context, _ *call.Call, next Handler) (any, error) {
		if d <= 0 {
			return next(ctx)
		}
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next(ctx)
	}
}
