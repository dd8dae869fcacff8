// foreign.go: bridging plain Go (T, error) returns into Result.
package xgxresult

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ForeignError wraps an error produced outside this package. Its base message
// is the wrapped error's text.
type ForeignError struct {
	err   error
	chain frames
}

// NewForeignError wraps err. A nil err is reported as "unknown error".
func NewForeignError(err error) *ForeignError {
	if err == nil {
		err = errNilForeign
	}
	return &ForeignError{err: err}
}

var errNilForeign = errors.New("unknown error")

func (e *ForeignError) Message() string { return e.err.Error() }
func (e *ForeignError) Error() string   { return e.chain.render(e.Message()) }
func (e *ForeignError) ID() uint64      { return messageID(e.Message()) }

func (e *ForeignError) ConsumeContext(f Frame) { e.chain = e.chain.push(f) }

// Unwrap returns the wrapped error.
func (e *ForeignError) Unwrap() error { return e.err }

// Cause returns the wrapped error; it lets github.com/pkg/errors.Cause reach
// through the bridge.
func (e *ForeignError) Cause() error { return e.err }

// Frames returns a copy of the context chain in attach order.
func (e *ForeignError) Frames() []Frame { return e.chain.clone() }

// FromErr converts a (value, error) pair into a Result. A nil err yields a
// success holding v. An err that already is a *ForeignError is reused so its
// chain survives another round trip through plain Go code.
//
//	r := FromErr(strconv.Atoi(s))
func FromErr[T any](v T, err error) Result[T, *ForeignError] {
	if err == nil {
		return Ok[T, *ForeignError](v)
	}
	if fe, ok := err.(*ForeignError); ok {
		return Fail[T](fe)
	}
	return Fail[T](NewForeignError(err))
}

// FromRPCError converts a (value, error) pair from a gRPC client into a
// Result whose failure is a StatusCodeError in RPCDomain. Errors that carry
// no gRPC status map to codes.Unknown. The failure keeps err, so its message
// shows up in Message and errors.Is still finds it.
func FromRPCError[T any](v T, err error) Result[T, *StatusCodeError] {
	if err == nil {
		return Ok[T, *StatusCodeError](v)
	}
	code := status.Code(err)
	if code == codes.OK {
		code = codes.Unknown
	}
	se := NewStatusCodeError(RPC(code))
	se.cause = err
	return Fail[T](se)
}
