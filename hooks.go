package portal

import (
	"context"
	"fmt"
)

// Factory lifecycle hooks. A factory opts in to a hook by implementing
// its interface; the dispatcher probes each hook by type assertion per
// dispatch. A factory implementing none of them is valid — a missing
// hook is indistinguishable from one that ran and did nothing.
// A panic raised inside a hook is recovered and treated as the hook
// returning an error, so it normalizes like any other failure.

// Invoking is called before the target method. An error aborts the
// dispatch exactly like a target-method failure.
type Invoking interface {
	OnInvoking(ctx context.Context, ambient any) error
}

// Invoked is called after the target method returns successfully. An
// error discards the successful result and fails the dispatch.
type Invoked interface {
	OnInvoked(ctx context.Context, ambient any) error
}

// InvokeFailed is called after the target method (or another hook)
// fails, with the normalized cause. Its own error is logged and
// discarded; it never overrides the original failure.
type InvokeFailed interface {
	OnInvokeError(ctx context.Context, cause error) error
}

// recoverHookPanic converts a panic escaping a hook into its error
// return. Installed by each try helper before calling the hook.
func recoverHookPanic(hook string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("panic in %s: %v", hook, r)
	}
}

// tryInvoking runs the pre-call hook if the factory implements it.
func tryInvoking(ctx context.Context, fac, ambient any) (err error) {
	h, ok := fac.(Invoking)
	if !ok {
		return nil
	}
	defer recoverHookPanic("OnInvoking", &err)
	return h.OnInvoking(ctx, ambient)
}

// tryInvoked runs the post-success hook if the factory implements it.
func tryInvoked(ctx context.Context, fac, ambient any) (err error) {
	h, ok := fac.(Invoked)
	if !ok {
		return nil
	}
	defer recoverHookPanic("OnInvoked", &err)
	return h.OnInvoked(ctx, ambient)
}

// tryInvokeError runs the error hook if the factory implements it.
func tryInvokeError(ctx context.Context, fac any, cause error) (err error) {
	h, ok := fac.(InvokeFailed)
	if !ok {
		return nil
	}
	defer recoverHookPanic("OnInvokeError", &err)
	return h.OnInvokeError(ctx, cause)
}
