package portal

import (
	"errors"

	"github.com/xraph/portal/factory"
)

var (
	// Resolution errors.
	ErrFactoryNotFound = factory.ErrNotFound
	ErrNoResolver      = errors.New("portal: no resolver configured")
	ErrNilFactory      = errors.New("portal: resolver returned nil factory")

	// Invocation errors.
	ErrMethodNotFound = errors.New("portal: target method not found")
	ErrBadSignature   = errors.New("portal: unsupported target method signature")
)

// Error is the single failure shape callers of the Dispatcher receive.
// Every internal failure kind — resolution, target invocation, hook — is
// caught at the operation boundary and re-expressed as an *Error carrying
// the selected method name and the normalized cause.
type Error struct {
	// Method is the target method name selected for the dispatch.
	Method string

	// Cause is the most specific underlying failure, unwrapped from any
	// invocation-mechanism wrappers. The full chain is preserved.
	Cause error

	// Result is a placeholder for partial results kept for diagnostics.
	// It is always nil at this layer.
	Result any
}

func (e *Error) Error() string {
	return e.Method + " failed on server"
}

func (e *Error) Unwrap() error { return e.Cause }

// MethodCallError wraps a failure raised by the reflective invocation
// mechanism around the real underlying cause. rootCause strips these
// pass-through layers so the *Error handed to callers exposes the
// original failure.
type MethodCallError struct {
	Method string
	Err    error
}

func (e *MethodCallError) Error() string {
	return "portal: call " + e.Method + ": " + e.Err.Error()
}

func (e *MethodCallError) Unwrap() error { return e.Err }

// rootCause returns the most specific underlying cause of err, unwrapping
// any directly nested MethodCallError layers. Wrapping applied by other
// code is left intact so context added outside the invocation mechanism
// survives.
func rootCause(err error) error {
	for {
		mce, ok := err.(*MethodCallError)
		if !ok || mce.Err == nil {
			return err
		}
		err = mce.Err
	}
}
