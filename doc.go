// doc.go: package documentation for xgx-result
//
// # Result and propagation
//
// A fallible function returns Result[T, E] where E implements Error. Callers
// either relay a failure untouched or attach one frame and relay it:
//
//	func loadUser(id int) Result[User, *GrowableError] {
//		row, fail, ok := Try[User](Ctx(queryRow(id), "loading user"))
//		if !ok {
//			return fail
//		}
//		return Ok[User, *GrowableError](row.User())
//	}
//
// At the top, Error() renders the base message followed by every frame in
// the order they were attached:
//
//	generic error happened::store/db.go:41 -> query failed::user/load.go:12 -> loading user
//
// # Choosing an error variant
//
//	+----------------------+-----------------------+-------------------------------+
//	| Variant              | Context storage       | Use when                      |
//	+----------------------+-----------------------+-------------------------------+
//	| GrowableError        | heap, unbounded       | default                       |
//	| BoundedError[B]      | inline [N]byte, cut   | attach must never allocate    |
//	| StatusCodeError      | heap, unbounded       | errno / gRPC status callers   |
//	| PanicError           | heap, unbounded       | recovering one panic type     |
//	| ForeignError         | heap, unbounded       | bridging (T, error) APIs      |
//	+----------------------+-----------------------+-------------------------------+
//
// BoundedError drops context that does not fit without reporting it. Pick
// the buffer from the Buffer constraint, e.g. BoundedError[[1024]byte].
//
// # Older conventions
//
//   - FromBool / FromBoolCall for (value, ok) APIs.
//   - FromStatus / FromStatusCall for status codes (Errno, RPC).
//   - FromMaybe / FromMaybeCall for the legacy MaybeFailure slot, where a
//     present value means failure.
//   - FromPanic / FromPanicAs to recover exactly one panic type.
//   - FromErr / FromRPCError for (value, error) APIs.
//
// # Identity
//
// ID() hashes the base message only (xxhash), so errors of the same kind
// compare equal with SameKind no matter which path they took.
//
// # Formatting
//
//   - %v, %s  concise Error()
//   - %+v     id, base message, one line per frame, cause
//   - %q      quoted Error()
//
// Structured logging lives in the logfield subpackage; the core never logs.
package xgxresult
