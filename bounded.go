// bounded.go: an error whose context lives in a fixed-size buffer.
//
// Each consumed frame is rendered straight into the buffer as "::"+frame.
// The first frame that does not fit whole closes the trail: it is cut at
// capacity and every later frame is accepted and dropped, so the trail stays
// a prefix of the full chain. The error never reports the overflow.
package xgxresult

// BoundedError keeps its rendered context trail in a FixedString[B]. Attaching
// context never allocates. The zero value is ready to use and reports
// DefaultBoundedMessage.
type BoundedError[B Buffer] struct {
	msg   string
	trail FixedString[B]
	cut   bool
}

// NewBoundedError returns a BoundedError with the given base message, or
// DefaultBoundedMessage when msg is empty.
func NewBoundedError[B Buffer](msg string) *BoundedError[B] {
	return &BoundedError[B]{msg: msg}
}

func (e *BoundedError[B]) Message() string {
	if e.msg == "" {
		return DefaultBoundedMessage
	}
	return e.msg
}

func (e *BoundedError[B]) Error() string { return e.Message() + e.trail.String() }
func (e *BoundedError[B]) ID() uint64    { return messageID(e.Message()) }

// ConsumeContext appends "::" and the rendered frame to the trail, cutting
// silently at the buffer's capacity.
func (e *BoundedError[B]) ConsumeContext(f Frame) {
	if e.cut {
		return
	}
	var scratch [2*128 + 24]byte
	rendered := f.appendTo(scratch[:0])
	if !writeFixed(&e.trail, contextSeparator) || !writeFixed(&e.trail, rendered) {
		e.cut = true
	}
}

// Trail returns the rendered context, starting with "::" when non-empty.
func (e *BoundedError[B]) Trail() string { return e.trail.String() }

// Truncated reports whether some context was dropped. Once true, further
// frames have no effect.
func (e *BoundedError[B]) Truncated() bool { return e.cut }
