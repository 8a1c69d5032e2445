// Package audit records an audit trail of portal dispatches.
//
// The [Extension] hooks into the dispatcher's lifecycle events and
// appends one [Record] per completed or failed dispatch through the
// [Store] interface. Backends live in subpackages: audit/memory for
// tests and development, audit/redis for ephemeral high-throughput
// trails, audit/postgres for durable trails.
//
// # Usage
//
//	store := memory.New()
//	d, _ := portal.New(
//	    portal.WithExtension(audit.New(store)),
//	)
//
// Store failures are logged and swallowed: the audit trail must never
// change the outcome of a dispatch.
package audit
