// Package portal routes entity data operations (Create, Fetch, Update,
// Delete) to named factory objects, so persistence and business logic can
// live outside the entity and be swapped per deployment. Callers never
// invoke an entity directly; every operation is dispatched to a factory
// resolved by name, a target method is selected by convention, optional
// lifecycle hooks run around the call, and every failure mode collapses
// into the single [Error] shape.
//
// Portal is designed as a library, not a service. Register factories,
// build a Dispatcher, and dispatch operations as ordinary method calls.
//
// # Quick Start
//
//	reg := factory.NewRegistry()
//	reg.Register("OrderFactory", func() any { return &OrderFactory{} })
//
//	d, err := portal.New(portal.WithResolver(reg))
//	res, err := d.Fetch(ctx, "Order", "id=5", portal.OperationContext{
//	    Factory: "OrderFactory",
//	})
//
// # Architecture
//
// Factories are plain Go values resolved freshly per dispatch. Target
// methods are selected from the caller's OperationContext (falling back
// to the canonical name per operation) and invoked reflectively, so a
// factory exposes only the operations it supports. Factories opt in to
// lifecycle hooks by implementing [Invoking], [Invoked], or
// [InvokeFailed]; a missing hook is a silent no-op.
//
// Cross-cutting behavior composes in two ways: middleware wraps the
// target invocation itself, while extensions observe dispatch lifecycle
// events without influencing the result.
package portal
