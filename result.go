package portal

// Result wraps the raw value returned by a successful target method call.
type Result struct {
	// Value is whatever the target method returned, or nil for methods
	// that return nothing.
	Value any
}
