// predicates.go: questions about arbitrary errors.
//
// Scope:
//   - Nil-safe helpers built on errors.As, so they see through fmt.Errorf("%w")
//     wrapping and errors.Join trees.
//   - No policy: they report what an error carries and never act on it.
package xgxresult

import (
	"errors"
)

// framer is implemented by the variants that keep their chain as frames.
type framer interface{ Frames() []Frame }

// IDOf returns the ID of the first Error found along err's chain.
func IDOf(err error) (uint64, bool) {
	if err == nil {
		return 0, false
	}
	var e Error
	if errors.As(err, &e) {
		return e.ID(), true
	}
	return 0, false
}

// SameKind reports whether a and b are (or wrap) errors with the same base
// message, regardless of the context each collected.
func SameKind(a, b error) bool {
	ia, ok := IDOf(a)
	if !ok {
		return false
	}
	ib, ok := IDOf(b)
	return ok && ia == ib
}

// StatusOf returns the code of the first StatusCodeError along err's chain.
func StatusOf(err error) (StatusCode, bool) {
	if err == nil {
		return StatusCode{}, false
	}
	var se *StatusCodeError
	if errors.As(err, &se) {
		return se.Code(), true
	}
	return StatusCode{}, false
}

// HasStatus reports whether err carries exactly code.
func HasStatus(err error, code StatusCode) bool {
	got, ok := StatusOf(err)
	return ok && got.Value() == code.Value() && got.Domain() == code.Domain()
}

// Recovered returns the panic value of the first PanicError along err's chain.
func Recovered(err error) (any, bool) {
	if err == nil {
		return nil, false
	}
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe.Value(), true
	}
	return nil, false
}

// FramesOf returns a copy of the context chain of the first error along
// err's chain that keeps frames. BoundedError keeps only rendered text; use
// its Trail method instead.
func FramesOf(err error) []Frame {
	if err == nil {
		return nil
	}
	var f framer
	if errors.As(err, &f) {
		return f.Frames()
	}
	return nil
}
