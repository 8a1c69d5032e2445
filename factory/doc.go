// Package factory resolves factory instances by name for the portal
// dispatcher.
//
// The default strategy is an explicit [Registry] mapping names to
// constructor functions, populated at process start. Each resolution
// constructs a fresh instance; a factory lives for exactly one dispatch.
//
// The strategy itself is pluggable through [Loader]: a process-scoped
// state object that selects its resolver once, on first use, from a
// single external setting (see [Config]). Lazy selection is idempotent —
// concurrent first callers may each construct a strategy, all of which
// behave identically, so the race is benign and needs no locking.
package factory
