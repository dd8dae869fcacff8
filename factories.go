// factories.go: adapters from older failure conventions to Result.
//
// Each factory leaves the success value as it is; only the failure branch is
// built. The *Call variants take the callee wrapped in a closure so a
// two-value call site fits on one line. Panics are bridged in panic.go and
// plain Go errors in foreign.go.
package xgxresult

// FromBool converts a success flag. ok=true yields v, ok=false yields err.
func FromBool[T any, E Error](ok bool, v T, err E) Result[T, E] {
	if ok {
		return Ok[T, E](v)
	}
	return Fail[T](err)
}

// FromBoolCall is FromBool for a callee returning (value, ok).
func FromBoolCall[T any, E Error](fn func() (T, bool), err E) Result[T, E] {
	v, ok := fn()
	return FromBool(ok, v, err)
}

// FromStatus converts a status code. An OK code yields v; any other code
// yields a StatusCodeError for it.
func FromStatus[T any](code StatusCode, v T) Result[T, *StatusCodeError] {
	if code.OK() {
		return Ok[T, *StatusCodeError](v)
	}
	return Fail[T](NewStatusCodeError(code))
}

// FromStatusCall is FromStatus for a callee returning (value, code).
func FromStatusCall[T any](fn func() (T, StatusCode)) Result[T, *StatusCodeError] {
	v, code := fn()
	return FromStatus(code, v)
}

// FromMaybe converts a legacy failure slot. An empty slot yields v; a present
// one yields the failure it holds.
func FromMaybe[T any, E Error](m MaybeFailure[E], v T) Result[T, E] {
	if !m.present {
		return Ok[T, E](v)
	}
	return Fail[T](m.err)
}

// FromMaybeCall is FromMaybe for a callee returning (value, slot).
func FromMaybeCall[T any, E Error](fn func() (T, MaybeFailure[E])) Result[T, E] {
	v, m := fn()
	return FromMaybe(m, v)
}
