// Package call defines the leaf types describing a single portal dispatch.
// It exists so that middleware and extensions can observe dispatches
// without importing the root portal package, which would create an
// import cycle.
package call

// Operation identifies which of the portal's data operations is being
// dispatched. Execute is used in place of Update when the payload is a
// command object rather than a persisted entity.
type Operation int

const (
	OpCreate Operation = iota
	OpFetch
	OpUpdate
	OpDelete
	OpExecute
)

// String returns the lower-case operation name.
func (o Operation) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpFetch:
		return "fetch"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpExecute:
		return "execute"
	default:
		return "unknown"
	}
}

// MethodName returns the canonical target method name for the operation.
// It is used when the caller's OperationContext does not map the
// operation to an explicit method name.
func (o Operation) MethodName() string {
	switch o {
	case OpCreate:
		return "Create"
	case OpFetch:
		return "Fetch"
	case OpUpdate:
		return "Update"
	case OpDelete:
		return "Delete"
	case OpExecute:
		return "Execute"
	default:
		return ""
	}
}

// Call describes one dispatch for observers: middleware and extensions
// receive it alongside the execution context. It carries routing
// metadata only, never the payload itself.
type Call struct {
	// Operation is the dispatched operation after command
	// classification, so a command payload shows up as OpExecute.
	Operation Operation

	// ObjectKind is the logical entity type name. It is a label for
	// logging, metrics, and audit records; the dispatcher never
	// interprets it.
	ObjectKind string

	// Factory is the name the factory instance was resolved under.
	Factory string

	// Method is the target method selected for this dispatch.
	Method string
}
