package portal

import "github.com/xraph/portal/call"

// Operation identifies a dispatched data operation.
type Operation = call.Operation

// Operation constants re-exported for callers of the root package.
const (
	OpCreate  = call.OpCreate
	OpFetch   = call.OpFetch
	OpUpdate  = call.OpUpdate
	OpDelete  = call.OpDelete
	OpExecute = call.OpExecute
)

// Command marks a payload as an invokable action rather than persisted
// state. Update dispatches route command payloads to the Execute method
// name instead of Update.
type Command interface {
	IsCommand()
}

// emptyCriteria is the type of the EmptyCriteria sentinel.
type emptyCriteria struct{}

func (emptyCriteria) String() string { return "<empty criteria>" }

// EmptyCriteria is the sentinel payload meaning "no criteria": the
// zero-argument form of the target method is invoked. Any other value,
// including nil, is passed as the single criteria argument.
var EmptyCriteria = emptyCriteria{}
