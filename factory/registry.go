package factory

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when no factory can be constructed for a name.
// The root portal package re-exports it as portal.ErrFactoryNotFound.
var ErrNotFound = errors.New("portal: factory not found")

// Resolver resolves a factory instance by name. Two resolutions of the
// same name must yield behaviorally equivalent instances; identity is
// not required, and implementations are expected to construct a fresh
// instance per call.
type Resolver interface {
	Resolve(name string) (any, error)
}

// ResolverFunc adapts a plain function to a Resolver.
type ResolverFunc func(name string) (any, error)

func (f ResolverFunc) Resolve(name string) (any, error) { return f(name) }

// Constructor builds a new factory instance.
type Constructor func() any

// Registry maps factory names to constructor functions. It is the
// default resolution strategy and is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry creates an empty factory registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register maps name to a constructor. Registering the same name twice
// replaces the previous constructor.
func (r *Registry) Register(name string, fn Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = fn
}

// RegisterType registers name to construct a fresh *T per resolution.
//
// This is a package-level generic function because Go does not allow
// generic methods on non-generic receiver types.
func RegisterType[T any](r *Registry, name string) {
	r.Register(name, func() any { return new(T) })
}

// Resolve constructs a new instance for name.
func (r *Registry) Resolve(name string) (any, error) {
	r.mu.RLock()
	fn, ok := r.constructors[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return fn(), nil
}

// Names returns all registered factory names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	return names
}
