package factory

import (
	"log/slog"
	"sync/atomic"
)

// Loader is the process-scoped resolution state. It owns a built-in
// default Registry and a table of named alternate strategies, and
// selects one resolver on first use according to its Config.
//
// Selection is lazy and idempotent: concurrent first callers may each
// run the selection, but every selected resolver is behaviorally
// identical, so the CompareAndSwap race is benign. After the first
// successful store the chosen resolver is used for the process lifetime.
type Loader struct {
	cfg        Config
	registry   *Registry
	strategies map[string]func() Resolver
	logger     *slog.Logger

	current atomic.Pointer[Resolver]
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithStrategy registers a named alternate resolution strategy. The
// constructor runs at most a handful of times during concurrent lazy
// selection; every instance it returns must behave identically.
func WithStrategy(name string, fn func() Resolver) LoaderOption {
	return func(l *Loader) { l.strategies[name] = fn }
}

// WithLoaderLogger sets the logger used for selection warnings.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader with an empty built-in Registry as the
// default strategy.
func NewLoader(cfg Config, opts ...LoaderOption) *Loader {
	l := &Loader{
		cfg:        cfg,
		registry:   NewRegistry(),
		strategies: make(map[string]func() Resolver),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Registry returns the built-in default registry so callers can
// populate it at process start.
func (l *Loader) Registry() *Registry { return l.registry }

// Resolve resolves name through the process-wide strategy, selecting
// the strategy on first use.
func (l *Loader) Resolve(name string) (any, error) {
	return l.strategy().Resolve(name)
}

func (l *Loader) strategy() Resolver {
	if p := l.current.Load(); p != nil {
		return *p
	}
	r := l.selectStrategy()
	l.current.CompareAndSwap(nil, &r)
	return *l.current.Load()
}

// selectStrategy picks the resolver named by the config, falling back to
// the built-in registry when no strategy is configured or the name is
// unknown.
func (l *Loader) selectStrategy() Resolver {
	if l.cfg.Strategy == "" {
		return l.registry
	}
	fn, ok := l.strategies[l.cfg.Strategy]
	if !ok {
		l.logger.Warn("portal: unknown resolver strategy, using registry",
			slog.String("strategy", l.cfg.Strategy),
		)
		return l.registry
	}
	return fn()
}
