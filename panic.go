// panic.go: the one place where a panic becomes a Result.
//
// Only panics whose value has the declared dynamic type are recovered. Any
// other panic keeps unwinding past the boundary unchanged; this is a narrow
// bridge for code that signals failure by panicking, not a general barrier.
package xgxresult

import (
	"fmt"
)

// PanicError carries a recovered panic value behind the Error capability.
type PanicError struct {
	value any
	chain frames
}

// Message renders the recovered value, e.g. "recovered panic: is negative".
func (e *PanicError) Message() string { return "recovered panic: " + describe(e.value) }

func (e *PanicError) Error() string { return e.chain.render(e.Message()) }
func (e *PanicError) ID() uint64    { return messageID(e.Message()) }

func (e *PanicError) ConsumeContext(f Frame) { e.chain = e.chain.push(f) }

// Value returns the recovered panic value.
func (e *PanicError) Value() any { return e.value }

// Frames returns a copy of the context chain in attach order.
func (e *PanicError) Frames() []Frame { return e.chain.clone() }

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// FromPanic calls fn and returns its value as a success. If fn panics with a
// value whose dynamic type is X, the panic is recovered and returned as a
// *PanicError failure. Panics of any other type are re-raised.
//
//	r := FromPanic[*strconv.NumError](func() int { return mustParse(s) })
func FromPanic[X any, T any](fn func() T) (res Result[T, *PanicError]) {
	defer func() {
		if rec := recover(); rec != nil {
			x, ok := rec.(X)
			if !ok {
				panic(rec)
			}
			res = Fail[T](&PanicError{value: x})
		}
	}()
	return Ok[T, *PanicError](fn())
}

// FromPanicAs is like FromPanic but reports the failure as err, enriched with
// the panic description as a location-free frame.
func FromPanicAs[X any, T any, E Error](fn func() T, err E) (res Result[T, E]) {
	defer func() {
		if rec := recover(); rec != nil {
			x, ok := rec.(X)
			if !ok {
				panic(rec)
			}
			res = AttachContext(Fail[T](err), Note(describe(x)))
		}
	}()
	return Ok[T, E](fn())
}

// describe renders a panic value the way it would print.
func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	default:
		return fmt.Sprintf("%v", v)
	}
}
