// construct.go: the growable error and the plain constructors.
//
// Scope:
//   - GrowableError keeps an unbounded, ordered chain of frames on the heap.
//   - StatusCodeError, PanicError and ForeignError reuse the same chain and only
//     differ in their base message and what they unwrap to.
//
// Notes:
//   - ConsumeContext mutates in place. A Result hands its error from owner to
//     owner; the error is never attached to from two places at once.
package xgxresult

// Default base messages used when a constructor is given an empty one.
const (
	DefaultGrowableMessage = "generic error happened"
	DefaultBoundedMessage  = "fixed size error happened"
)

// -----------------------------------------------------------------------------
// GrowableError
// -----------------------------------------------------------------------------

// GrowableError is an error with a base message and an unbounded context
// chain. The zero value is ready to use and reports DefaultGrowableMessage.
type GrowableError struct {
	msg   string
	chain frames
}

// New returns a GrowableError with the given base message.
func New(msg string) *GrowableError {
	return NewGrowableError(msg)
}

// NewGrowableError returns a GrowableError with the given base message, or
// DefaultGrowableMessage when msg is empty.
func NewGrowableError(msg string) *GrowableError {
	return &GrowableError{msg: msg}
}

func (e *GrowableError) Message() string {
	if e.msg == "" {
		return DefaultGrowableMessage
	}
	return e.msg
}

func (e *GrowableError) Error() string { return e.chain.render(e.Message()) }
func (e *GrowableError) ID() uint64    { return messageID(e.Message()) }

// ConsumeContext appends f to the chain.
func (e *GrowableError) ConsumeContext(f Frame) { e.chain = e.chain.push(f) }

// Frames returns a copy of the context chain in attach order.
func (e *GrowableError) Frames() []Frame { return e.chain.clone() }

// Len returns the number of frames consumed so far.
func (e *GrowableError) Len() int { return len(e.chain) }

// -----------------------------------------------------------------------------
// Interface conformance guards (keep in the file that defines the types)
// -----------------------------------------------------------------------------
var (
	_ Error = (*GrowableError)(nil)
	_ Error = (*BoundedError[[16]byte])(nil)
	_ Error = (*StatusCodeError)(nil)
	_ Error = (*PanicError)(nil)
	_ Error = (*ForeignError)(nil)
)
