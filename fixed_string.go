// fixed_string.go: fixed-capacity strings that never touch the heap.
//
// A FixedString keeps its bytes in an array chosen by the type parameter, so
// a value can live on the stack or inline in another struct. Input longer
// than the capacity is cut silently; callers that need to know can compare
// Len against the source length.
package xgxresult

import (
	"strings"
	"unicode/utf8"
)

// Buffer lists the backing arrays a FixedString may use. The usable
// capacity is one byte less than the array length; the last slot is kept for
// the zero sentinel that follows the logical string.
type Buffer interface {
	~[16]byte | ~[32]byte | ~[64]byte | ~[128]byte | ~[256]byte |
		~[512]byte | ~[1024]byte | ~[2048]byte | ~[4096]byte
}

// FixedString is an immutable string of at most len(B)-1 bytes.
//
// The zero value is the empty string. Two values compare equal with == when
// their logical strings are equal, because bytes past the logical end are
// always zero.
type FixedString[B Buffer] struct {
	buf B
	n   int
}

// ContextString is the storage used for frame messages and file names.
type ContextString = FixedString[[128]byte]

// NewFixedString copies up to Cap() bytes of s. The remainder is dropped.
func NewFixedString[B Buffer](s string) FixedString[B] {
	var out FixedString[B]
	writeFixed(&out, s)
	return out
}

// String returns the logical string.
func (s FixedString[B]) String() string {
	if s.n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(s.n)
	for i := 0; i < s.n; i++ {
		sb.WriteByte(s.buf[i])
	}
	return sb.String()
}

// Len returns the number of bytes held.
func (s FixedString[B]) Len() int { return s.n }

// Cap returns the maximum number of bytes the value can hold.
func (s FixedString[B]) Cap() int { return len(s.buf) - 1 }

// Full reports whether no further byte fits.
func (s FixedString[B]) Full() bool { return s.n >= s.Cap() }

// Equal reports whether s and o hold the same logical string.
func (s FixedString[B]) Equal(o FixedString[B]) bool { return s == o }

// Append returns a copy of s with parts appended in order. Whatever does not
// fit is dropped; s itself is unchanged.
func (s FixedString[B]) Append(parts ...string) FixedString[B] {
	for _, p := range parts {
		if !writeFixed(&s, p) {
			break
		}
	}
	return s
}

// appendTo appends the logical string to dst.
func (s *FixedString[B]) appendTo(dst []byte) []byte {
	for i := 0; i < s.n; i++ {
		dst = append(dst, s.buf[i])
	}
	return dst
}

// writeFixed copies as much of p as fits into s and reports whether all of p
// was written. A cut never lands inside a UTF-8 sequence.
func writeFixed[B Buffer, P ~string | ~[]byte](s *FixedString[B], p P) bool {
	room := len(s.buf) - 1 - s.n
	k := len(p)
	whole := true
	if k > room {
		whole = false
		k = room
		for i := 0; k > 0 && i < utf8.UTFMax-1 && !utf8.RuneStart(p[k]); i++ {
			k--
		}
	}
	for i := 0; i < k; i++ {
		s.buf[s.n+i] = p[i]
	}
	s.n += k
	return whole
}
