// Package ext defines the extension system for Portal. Extensions are
// notified of dispatch lifecycle events and can react to them — recording
// metrics, writing audit trails, emitting webhooks, etc.
//
// Each lifecycle hook is a separate interface so extensions opt in only
// to the events they care about. Extension errors are logged and
// swallowed: observers must never influence the outcome of a dispatch.
// That is the deliberate contrast with factory hooks in the root
// package, which are part of the dispatch contract and do propagate.
package ext

import (
	"context"
	"time"

	"github.com/xraph/portal/call"
)

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// DispatchStarted is called when a dispatch begins, before the factory
// is resolved.
type DispatchStarted interface {
	OnDispatchStarted(ctx context.Context, c *call.Call) error
}

// DispatchCompleted is called after a dispatch finishes successfully.
type DispatchCompleted interface {
	OnDispatchCompleted(ctx context.Context, c *call.Call, elapsed time.Duration) error
}

// DispatchFailed is called when a dispatch fails, with the normalized
// failure the caller will receive.
type DispatchFailed interface {
	OnDispatchFailed(ctx context.Context, c *call.Call, err error) error
}
