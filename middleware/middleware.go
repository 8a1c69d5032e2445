// Package middleware provides composable middleware for portal dispatch.
// Middleware wraps the target method invocation synchronously and can
// modify execution (recover from panics, log, time out, add metrics and
// tracing, etc.). It never changes which method is invoked or how
// failures are normalized — that is the dispatcher's job.
package middleware

import (
	"context"

	"github.com/xraph/portal/call"
)

// Handler is the terminal function that performs the target invocation
// and returns its raw result.
type Handler func(ctx context.Context) (any, error)

// Middleware wraps a Handler with cross-cutting logic. It receives the
// current context, the call being dispatched, and the next handler.
// Middleware MUST call next to continue the chain (unless
// short-circuiting on error).
type Middleware func(ctx context.Context, c *call.Call, next Handler) (any, error)

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, timeout) executes as:
//
//	logging → recover → timeout → target
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, c *call.Call, next Handler) (any, error) {
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) (any, error) {
				return mw(ctx, c, prev)
			}
		}
		return h(ctx)
	}
}
