package ext

import (
	"context"
	"log/slog"
	"time"

	"github.com/xraph/portal/call"
)

// Named entry types pair a hook implementation with the extension name
// captured at registration time. This avoids type-asserting back to
// Extension inside the emit methods.
type startedEntry struct {
	name string
	hook DispatchStarted
}

type completedEntry struct {
	name string
	hook DispatchCompleted
}

type failedEntry struct {
	name string
	hook DispatchFailed
}

// Registry holds registered extensions and dispatches lifecycle events
// to them. It type-caches extensions at registration time so emit calls
// iterate only over extensions that implement the relevant hook.
type Registry struct {
	extensions []Extension
	logger     *slog.Logger

	// Type-cached slices for each lifecycle hook.
	started   []startedEntry
	completed []completedEntry
	failed    []failedEntry
}

// NewRegistry creates an extension registry with the given logger.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger}
}

// Register adds an extension and type-asserts it into all applicable
// hook caches. Extensions are notified in registration order.
func (r *Registry) Register(e Extension) {
	r.extensions = append(r.extensions, e)
	name := e.Name()

	if h, ok := e.(DispatchStarted); ok {
		r.started = append(r.started, startedEntry{name, h})
	}
	if h, ok := e.(DispatchCompleted); ok {
		r.completed = append(r.completed, completedEntry{name, h})
	}
	if h, ok := e.(DispatchFailed); ok {
		r.failed = append(r.failed, failedEntry{name, h})
	}
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []Extension { return r.extensions }

// EmitDispatchStarted notifies all extensions that implement DispatchStarted.
func (r *Registry) EmitDispatchStarted(ctx context.Context, c *call.Call) {
	for _, e := range r.started {
		if err := e.hook.OnDispatchStarted(ctx, c); err != nil {
			r.logHookError("OnDispatchStarted", e.name, err)
		}
	}
}

// EmitDispatchCompleted notifies all extensions that implement DispatchCompleted.
func (r *Registry) EmitDispatchCompleted(ctx context.Context, c *call.Call, elapsed time.Duration) {
	for _, e := range r.completed {
		if err := e.hook.OnDispatchCompleted(ctx, c, elapsed); err != nil {
			r.logHookError("OnDispatchCompleted", e.name, err)
		}
	}
}

// EmitDispatchFailed notifies all extensions that implement DispatchFailed.
func (r *Registry) EmitDispatchFailed(ctx context.Context, c *call.Call, dispatchErr error) {
	for _, e := range r.failed {
		if err := e.hook.OnDispatchFailed(ctx, c, dispatchErr); err != nil {
			r.logHookError("OnDispatchFailed", e.name, err)
		}
	}
}

// logHookError logs a warning when a lifecycle hook returns an error.
// Errors from extensions are never propagated — they must not change
// the outcome of a dispatch.
func (r *Registry) logHookError(hook, extName string, err error) {
	r.logger.Warn("extension hook error",
		slog.String("hook", hook),
		slog.String("extension", extName),
		slog.String("error", err.Error()),
	)
}
