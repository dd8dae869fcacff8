// try.go: propagation helpers.
//
// Go has no operator that returns from the enclosing function, so
// propagation is the usual evaluate, branch, return:
//
//	func triple() Result[int, *GrowableError] {
//		v, fail, ok := Try[int](inner())
//		if !ok {
//			return fail
//		}
//		return Ok[int, *GrowableError](3 * v)
//	}
//
// The argument is evaluated once, by Go, before the helper runs. The helpers
// only reshape the failure into the enclosing function's return type; each
// function on the path relays the failure itself, optionally attaching a
// frame first (see AttachContext and Ctx).
package xgxresult

// Try unwraps r. On success it returns the value and ok=true. On failure it
// returns the same error as a Result of the enclosing function's value type U
// and ok=false; the caller returns that Result unchanged.
func Try[U, T any, E Error](r Result[T, E]) (T, Result[U, E], bool) {
	if r.failed {
		var zero T
		return zero, Fail[U](r.err), false
	}
	return r.value, Result[U, E]{}, true
}

// TryConvert is Try for an enclosing function that declares a different
// error type F; conv rewraps the failure.
func TryConvert[U, T any, E, F Error](r Result[T, E], conv func(E) F) (T, Result[U, F], bool) {
	if r.failed {
		var zero T
		return zero, Fail[U](conv(r.err)), false
	}
	return r.value, Result[U, F]{}, true
}

// TryMaybe is Try for an enclosing function that reports failure through a
// MaybeFailure. On failure the returned slot holds the error.
func TryMaybe[T any, E Error](r Result[T, E]) (T, MaybeFailure[E], bool) {
	if r.failed {
		var zero T
		return zero, Failure(r.err), false
	}
	return r.value, MaybeFailure[E]{}, true
}

// TryLegacy relays a MaybeFailure from a legacy callee inside a legacy
// caller. ok is false when m holds a failure; the caller returns m.
func TryLegacy[E Error](m MaybeFailure[E]) (MaybeFailure[E], bool) {
	return m, !m.present
}
