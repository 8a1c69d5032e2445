package portal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xraph/portal/call"
	"github.com/xraph/portal/ext"
	"github.com/xraph/portal/factory"
	"github.com/xraph/portal/middleware"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher) error

// Dispatcher routes data operations to named factories. It resolves the
// factory, selects the target method, runs the hook protocol around one
// target invocation, and normalizes every failure into *Error.
//
// Create one with New and functional options. Dispatch calls may run
// concurrently; the Dispatcher holds no mutable state of its own — the
// only process-wide state in this layer is the lazily selected strategy
// inside a factory.Loader, whose initialization is idempotent.
type Dispatcher struct {
	resolver   factory.Resolver
	logger     *slog.Logger
	extensions *ext.Registry
	mws        []middleware.Middleware
	chain      middleware.Middleware
}

// New creates a Dispatcher with the given options. Without WithResolver
// a factory.Loader with default configuration is used; populate its
// registry through a Loader you construct yourself if you need to
// register factories, which is almost always.
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.resolver == nil {
		d.resolver = factory.NewLoader(factory.DefaultConfig())
	}
	if d.extensions == nil {
		d.extensions = ext.NewRegistry(d.logger)
	}
	if len(d.mws) > 0 {
		d.chain = middleware.Chain(d.mws...)
	}
	return d, nil
}

// WithResolver sets the factory resolution strategy. Pass a populated
// *factory.Registry, a *factory.Loader, or any custom Resolver.
func WithResolver(r factory.Resolver) Option {
	return func(d *Dispatcher) error {
		if r == nil {
			return ErrNoResolver
		}
		d.resolver = r
		return nil
	}
}

// WithLogger sets the structured logger for the dispatcher.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) error {
		d.logger = l
		return nil
	}
}

// WithExtension registers a lifecycle extension.
func WithExtension(e ext.Extension) Option {
	return func(d *Dispatcher) error {
		if d.extensions == nil {
			d.extensions = ext.NewRegistry(d.logger)
		}
		d.extensions.Register(e)
		return nil
	}
}

// WithMiddleware appends middleware to the chain wrapping the target
// invocation. The first middleware added is the outermost wrapper.
func WithMiddleware(m middleware.Middleware) Option {
	return func(d *Dispatcher) error {
		d.mws = append(d.mws, m)
		return nil
	}
}

// Extensions returns the dispatcher's extension registry.
func (d *Dispatcher) Extensions() *ext.Registry { return d.extensions }

// Logger returns the dispatcher's logger.
func (d *Dispatcher) Logger() *slog.Logger { return d.logger }

// Create dispatches a Create operation for objectKind to the factory
// named in oc. EmptyCriteria selects the zero-argument form of the
// target method.
func (d *Dispatcher) Create(ctx context.Context, objectKind string, criteria any, oc OperationContext) (*Result, error) {
	return d.dispatch(ctx, OpCreate, objectKind, criteria, oc)
}

// Fetch dispatches a Fetch operation for objectKind.
func (d *Dispatcher) Fetch(ctx context.Context, objectKind string, criteria any, oc OperationContext) (*Result, error) {
	return d.dispatch(ctx, OpFetch, objectKind, criteria, oc)
}

// Delete dispatches a Delete operation for objectKind.
func (d *Dispatcher) Delete(ctx context.Context, objectKind string, criteria any, oc OperationContext) (*Result, error) {
	return d.dispatch(ctx, OpDelete, objectKind, criteria, oc)
}

// Update dispatches an Update operation for payload. A payload
// implementing Command routes to the Execute method name instead of
// Update. In both cases the payload itself is the single argument to
// the target method; Update and Execute have no zero-argument form.
func (d *Dispatcher) Update(ctx context.Context, payload any, oc OperationContext) (*Result, error) {
	op := OpUpdate
	if _, ok := payload.(Command); ok {
		op = OpExecute
	}
	return d.dispatch(ctx, op, fmt.Sprintf("%T", payload), payload, oc)
}

// dispatch is the shared algorithm behind all four operations.
func (d *Dispatcher) dispatch(ctx context.Context, op Operation, objectKind string, criteria any, oc OperationContext) (*Result, error) {
	c := &call.Call{
		Operation:  op,
		ObjectKind: objectKind,
		Factory:    oc.Factory,
		Method:     oc.methodFor(op),
	}
	start := time.Now()
	d.extensions.EmitDispatchStarted(ctx, c)

	fac, err := d.resolver.Resolve(oc.Factory)
	if err != nil {
		// No factory instance exists, so no hook can be attempted.
		return nil, d.fail(ctx, c, nil, err)
	}
	if fac == nil {
		// A resolver handing back a nil instance is a resolution
		// failure; an untyped nil would blow up under reflection.
		return nil, d.fail(ctx, c, nil, fmt.Errorf("%w: %q", ErrNilFactory, oc.Factory))
	}

	if err := tryInvoking(ctx, fac, oc.Ambient); err != nil {
		return nil, d.fail(ctx, c, fac, err)
	}

	value, err := d.invoke(ctx, c, fac, op, criteria)
	if err != nil {
		return nil, d.fail(ctx, c, fac, err)
	}

	if err := tryInvoked(ctx, fac, oc.Ambient); err != nil {
		// A failing completion hook outranks the successful result:
		// the value is discarded and the hook failure is reported.
		return nil, d.fail(ctx, c, fac, err)
	}

	d.extensions.EmitDispatchCompleted(ctx, c, time.Since(start))
	return &Result{Value: value}, nil
}

// invoke runs the target method through the middleware chain.
func (d *Dispatcher) invoke(ctx context.Context, c *call.Call, fac any, op Operation, criteria any) (any, error) {
	zeroArg := criteria == EmptyCriteria && op != OpUpdate && op != OpExecute
	target := func(ctx context.Context) (any, error) {
		if zeroArg {
			return callMethod(ctx, fac, c.Method)
		}
		return callMethod(ctx, fac, c.Method, criteria)
	}
	if d.chain == nil {
		return target(ctx)
	}
	return d.chain(ctx, c, target)
}

// fail normalizes any internal failure into *Error, running the
// factory's error hook first when an instance exists.
func (d *Dispatcher) fail(ctx context.Context, c *call.Call, fac any, cause error) error {
	normalized := rootCause(cause)

	if fac != nil {
		if hookErr := tryInvokeError(ctx, fac, normalized); hookErr != nil {
			// The error hook's own failure never overrides the
			// original cause.
			d.logger.Warn("portal: error hook failed",
				slog.String("factory", c.Factory),
				slog.String("method", c.Method),
				slog.String("error", hookErr.Error()),
			)
		}
	}

	perr := &Error{Method: c.Method, Cause: normalized}
	d.extensions.EmitDispatchFailed(ctx, c, perr)
	return perr
}
