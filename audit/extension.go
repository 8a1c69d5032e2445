package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xraph/portal/call"
	"github.com/xraph/portal/ext"
)

// Compile-time interface checks.
var (
	_ ext.Extension         = (*Extension)(nil)
	_ ext.DispatchCompleted = (*Extension)(nil)
	_ ext.DispatchFailed    = (*Extension)(nil)
)

// Extension bridges dispatch lifecycle events to an audit Store. Each
// completed or failed dispatch is appended as one Record.
type Extension struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Extension.
type Option func(*Extension)

// WithLogger sets a custom logger for the extension.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extension) { e.logger = l }
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Extension) { e.now = now }
}

// New creates an Extension that appends records to store.
func New(store Store, opts ...Option) *Extension {
	e := &Extension{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements ext.Extension.
func (e *Extension) Name() string { return "audit" }

// OnDispatchCompleted implements ext.DispatchCompleted.
func (e *Extension) OnDispatchCompleted(ctx context.Context, c *call.Call, elapsed time.Duration) error {
	e.append(ctx, &Record{
		ID:         uuid.New(),
		Operation:  c.Operation.String(),
		ObjectKind: c.ObjectKind,
		Factory:    c.Factory,
		Method:     c.Method,
		Outcome:    OutcomeSuccess,
		ElapsedMS:  elapsed.Milliseconds(),
		At:         e.now().UTC(),
	})
	return nil
}

// OnDispatchFailed implements ext.DispatchFailed.
func (e *Extension) OnDispatchFailed(ctx context.Context, c *call.Call, dispatchErr error) error {
	rec := &Record{
		ID:         uuid.New(),
		Operation:  c.Operation.String(),
		ObjectKind: c.ObjectKind,
		Factory:    c.Factory,
		Method:     c.Method,
		Outcome:    OutcomeFailure,
		At:         e.now().UTC(),
	}
	if dispatchErr != nil {
		rec.Error = dispatchErr.Error()
	}
	e.append(ctx, rec)
	return nil
}

// append writes the record, logging and swallowing store failures.
func (e *Extension) append(ctx context.Context, rec *Record) {
	if err := e.store.Append(ctx, rec); err != nil {
		e.logger.Warn("audit: failed to append record",
			slog.String("operation", rec.Operation),
			slog.String("method", rec.Method),
			slog.String("error", err.Error()),
		)
	}
}
