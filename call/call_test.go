package call_test

import (
	"testing"

	"github.com/xraph/portal/call"
)

func TestOperation_String(t *testing.T) {
	cases := map[call.Operation]string{
		call.OpCreate:      "create",
		call.OpFetch:       "fetch",
		call.OpUpdate:      "update",
		call.OpDelete:      "delete",
		call.OpExecute:     "execute",
		call.Operation(99): "unknown",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}

func TestOperation_MethodName(t *testing.T) {
	cases := map[call.Operation]string{
		call.OpCreate:  "Create",
		call.OpFetch:   "Fetch",
		call.OpUpdate:  "Update",
		call.OpDelete:  "Delete",
		call.OpExecute: "Execute",
	}
	for op, want := range cases {
		if got := op.MethodName(); got != want {
			t.Errorf("%v.MethodName() = %q, want %q", op, got, want)
		}
	}
}
