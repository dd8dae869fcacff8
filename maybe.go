// maybe.go: the legacy failure slot.
//
// Older APIs return an optional error where a PRESENT value means the call
// failed, the reverse of the usual optional-means-absent reading. The type is
// named for what it holds so the inversion stays visible; the primary API only
// meets it in FromMaybe, FromMaybeCall, TryMaybe and TryLegacy.
package xgxresult

// MaybeFailure is the legacy failure slot: HasError is true when a failure is
// present. The zero value holds no failure.
type MaybeFailure[E Error] struct {
	err     E
	present bool
}

// NoFailure returns an empty slot.
func NoFailure[E Error]() MaybeFailure[E] {
	return MaybeFailure[E]{}
}

// Failure returns a slot holding err.
func Failure[E Error](err E) MaybeFailure[E] {
	return MaybeFailure[E]{err: err, present: true}
}

// HasError reports whether the slot holds a failure.
func (m MaybeFailure[E]) HasError() bool { return m.present }

// Err returns the failure and true, or the zero E and false.
func (m MaybeFailure[E]) Err() (E, bool) {
	if !m.present {
		var zero E
		return zero, false
	}
	return m.err, true
}
