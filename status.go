// status.go: the error variant for platform and RPC status codes.
//
// A StatusCodeError carries one StatusCode and a growable context chain.
// When built from a gRPC client error it also keeps that error, so the
// server's message and errors.Is on the original still work.
package xgxresult

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusCodeError wraps a non-OK StatusCode. Context frames are kept in a
// growable chain like GrowableError's.
type StatusCodeError struct {
	code  StatusCode
	cause error
	chain frames
}

// NewStatusCodeError returns an error for code.
func NewStatusCodeError(code StatusCode) *StatusCodeError {
	return &StatusCodeError{code: code}
}

// Message renders the domain, numeric value and description of the code,
// e.g. "system status 34: numerical result out of range". An error bridged
// from a gRPC call appends the server's message:
// "rpc status 5: NotFound: user 42 not found".
func (e *StatusCodeError) Message() string {
	msg := fmt.Sprintf("%s status %d: %s", e.code.Domain().Name(), e.code.Value(), e.code.Describe())
	if e.cause != nil {
		if detail := status.Convert(e.cause).Message(); detail != "" {
			msg += ": " + detail
		}
	}
	return msg
}

func (e *StatusCodeError) Error() string { return e.chain.render(e.Message()) }
func (e *StatusCodeError) ID() uint64    { return messageID(e.Message()) }

func (e *StatusCodeError) ConsumeContext(f Frame) { e.chain = e.chain.push(f) }

// Code returns the wrapped status code.
func (e *StatusCodeError) Code() StatusCode { return e.code }

// Frames returns a copy of the context chain in attach order.
func (e *StatusCodeError) Frames() []Frame { return e.chain.clone() }

// Unwrap returns the bridged gRPC error when there is one, otherwise the
// domain's native error so errors.Is matches, e.g., syscall.ERANGE.
func (e *StatusCodeError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.code.Err()
}

// GRPCStatus lets status.FromError and status.Code see through the error
// when the code belongs to the gRPC domain.
func (e *StatusCodeError) GRPCStatus() *status.Status {
	if e.code.Domain() != RPCDomain {
		return nil
	}
	if e.cause != nil {
		return status.New(codes.Code(e.code.Value()), status.Convert(e.cause).Message())
	}
	s, _ := status.FromError(e.code.Err())
	return s
}
