// context.go: context frames, the breadcrumbs an error collects on its way up.
//
// Design:
//   - A Frame is a fixed-size value (two ContextStrings and a line) so it can be
//     built and passed without allocating.
//   - Frames are never mutated after construction; errors copy them into their
//     chain in attach order.
//   - Rendering is deterministic: "file:line -> message", or the bare message
//     when no location was given.
package xgxresult

import (
	"strconv"
)

// contextSeparator joins the base message and each rendered frame.
const contextSeparator = "::"

// Frame is a single diagnostic breadcrumb attached while a failure propagates.
type Frame struct {
	message ContextString
	file    ContextString
	line    uint
}

// FrameConfig is the construction surface for frames. File and Line are
// optional; leaving both at their zero values produces a frame that renders
// as the bare message.
type FrameConfig struct {
	Message string
	File    string
	Line    uint
}

// NewFrame builds a frame from cfg. Message and File are truncated to the
// capacity of ContextString.
func NewFrame(cfg FrameConfig) Frame {
	return Frame{
		message: NewFixedString[[128]byte](cfg.Message),
		file:    NewFixedString[[128]byte](cfg.File),
		line:    cfg.Line,
	}
}

// Note builds a frame without location information.
func Note(msg string) Frame {
	return Frame{message: NewFixedString[[128]byte](msg)}
}

// At builds a frame for an explicit source location.
func At(msg, file string, line uint) Frame {
	return NewFrame(FrameConfig{Message: msg, File: file, Line: line})
}

func (f Frame) Message() string { return f.message.String() }
func (f Frame) File() string    { return f.file.String() }
func (f Frame) Line() uint      { return f.line }

// HasLocation reports whether the frame renders a "file:line -> " prefix.
func (f Frame) HasLocation() bool { return f.file.Len() > 0 || f.line != 0 }

// String renders the frame.
func (f Frame) String() string {
	var scratch [2*128 + 24]byte
	return string(f.appendTo(scratch[:0]))
}

// appendTo renders the frame into dst without intermediate strings.
func (f *Frame) appendTo(dst []byte) []byte {
	if f.HasLocation() {
		dst = f.file.appendTo(dst)
		dst = append(dst, ':')
		dst = strconv.AppendUint(dst, uint64(f.line), 10)
		dst = append(dst, " -> "...)
	}
	return f.message.appendTo(dst)
}

// frames is the append-only chain kept by the growable variants.
// Order is attach order: the first frame attached renders first.
type frames []Frame

// push appends f. Chains are owned by a single error, so appending in place
// is safe.
func (c frames) push(f Frame) frames { return append(c, f) }

// clone returns a copy that shares nothing with c.
func (c frames) clone() []Frame {
	if len(c) == 0 {
		return nil
	}
	out := make([]Frame, len(c))
	copy(out, c)
	return out
}

// render writes base followed by "::"+frame for every frame in order.
func (c frames) render(base string) string {
	if len(c) == 0 {
		return base
	}
	buf := make([]byte, 0, len(base)+len(c)*48)
	buf = append(buf, base...)
	for i := range c {
		buf = append(buf, contextSeparator...)
		buf = c[i].appendTo(buf)
	}
	return string(buf)
}

// strings returns every frame rendered on its own.
func (c frames) strings() []string {
	if len(c) == 0 {
		return nil
	}
	out := make([]string, len(c))
	for i := range c {
		out[i] = c[i].String()
	}
	return out
}
