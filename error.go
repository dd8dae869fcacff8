// Package xgxresult defines a single success/failure type, Result, and the
// error capability its failures satisfy. It normalizes older failure
// conventions (comma-ok flags, status codes, legacy failure slots, panics and
// plain Go errors) into Result, and lets each function on the failure path
// attach one breadcrumb to the error before relaying it.
//
// Design tenets:
//   - One capability, many storages: unbounded chains for convenience and
//     fixed-size trails when allocation matters.
//   - Explicit propagation: every hop either relays a failure or enriches it;
//     nothing is swallowed and nothing is logged by the core.
//   - Interop-first: every error is a Go error and participates in errors.Is/As.
package xgxresult

import (
	"github.com/cespare/xxhash/v2"
)

// Error is the capability every failure payload of a Result provides.
//
// User-defined types that implement it work with AttachContext, the Try
// helpers and every factory in this package.
//
// Contract:
//   - Error() renders the base message followed by every consumed frame,
//     joined by "::" in attach order. It is pure and idempotent.
//   - Message() returns the base message only.
//   - ID() is a stable hash of Message(); it never covers context, so two
//     errors of the same kind with different histories share an ID.
//   - ConsumeContext is the only mutator. It must keep previously consumed
//     frames and their order. It is called by whoever exclusively owns the
//     error at that moment, so implementations need no locking.
type Error interface {
	error

	Message() string

	ID() uint64

	ConsumeContext(Frame)
}

// messageID is the ID every built-in variant derives from its base message.
func messageID(msg string) uint64 {
	return xxhash.Sum64String(msg)
}
