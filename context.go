package portal

// OperationContext is the caller-supplied, call-scoped routing metadata
// for a dispatch. It names the factory to resolve, optionally maps each
// operation to the target method name to invoke on it, and carries an
// opaque ambient value forwarded unchanged to factory hooks.
//
// An OperationContext is treated as immutable for the duration of the
// call. Callers must not mutate Methods after handing the context to a
// Dispatcher operation.
type OperationContext struct {
	// Factory is the name the factory is resolved under.
	Factory string

	// Methods maps operations to target method names. A missing or
	// empty entry falls back to the canonical method name for the
	// operation (Create, Fetch, Update, Delete, Execute).
	Methods map[Operation]string

	// Ambient is an opaque execution-context value passed through
	// unchanged to the factory's Invoking and Invoked hooks.
	Ambient any
}

// methodFor selects the target method name for op. Selection is a pure
// lookup: no factory state influences it.
func (oc OperationContext) methodFor(op Operation) string {
	if m, ok := oc.Methods[op]; ok && m != "" {
		return m
	}
	return op.MethodName()
}
