// result.go: the success/failure sum type.
package xgxresult

// Result holds exactly one of a success value of type T or a failure of type
// E. There is no conversion between the two branches.
//
// The zero Result is a success holding the zero T, mirroring Go's (zero, nil)
// convention. Build failures with Fail.
//
// A Result owns its failure: passing a Result by value hands the error to the
// receiver, and the previous holder should not attach to it afterwards.
type Result[T any, E Error] struct {
	value  T
	err    E
	failed bool
}

// Ok returns a successful Result holding v.
func Ok[T any, E Error](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Fail returns a failed Result holding err.
//
//	return Fail[int](xgxresult.New("not ready"))
func Fail[T any, E Error](err E) Result[T, E] {
	return Result[T, E]{err: err, failed: true}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool { return !r.failed }

// Failed reports whether r holds a failure.
func (r Result[T, E]) Failed() bool { return r.failed }

// Value returns the success value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure and true, or the zero E and false.
func (r Result[T, E]) Err() (E, bool) {
	if !r.failed {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unpack returns the value, the error and whether r is a success. Only one of
// value and error is meaningful.
func (r Result[T, E]) Unpack() (T, E, bool) {
	return r.value, r.err, !r.failed
}

// ValueOr returns the success value, or def when r failed.
func (r Result[T, E]) ValueOr(def T) T {
	if r.failed {
		return def
	}
	return r.value
}

// Get converts r back to Go's (value, error) convention. The error is a nil
// interface on success.
func (r Result[T, E]) Get() (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
