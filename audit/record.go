package audit

import (
	"time"

	"github.com/google/uuid"
)

// Outcome values for a Record.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Record is one audited dispatch.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Operation  string    `json:"operation"`
	ObjectKind string    `json:"object_kind,omitempty"`
	Factory    string    `json:"factory"`
	Method     string    `json:"method"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	ElapsedMS  int64     `json:"elapsed_ms"`
	At         time.Time `json:"at"`
}
