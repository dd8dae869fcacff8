package xgxresult

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runtimeFailure is the panic value raised by positiveOnlySquarePanics.
type runtimeFailure struct{ msg string }

func (r runtimeFailure) Error() string { return r.msg }

func positiveOnlySquarePanics(n int) int {
	if n < 0 {
		panic(runtimeFailure{msg: "is negative"})
	}
	return n * n
}

func TestFromPanic_SuccessKeepsValue(t *testing.T) {
	t.Parallel()

	r := FromPanic[runtimeFailure](func() int { return positiveOnlySquarePanics(3) })
	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestFromPanic_RecoversDeclaredType(t *testing.T) {
	t.Parallel()

	r := FromPanic[runtimeFailure](func() int { return positiveOnlySquarePanics(-3) })
	require.True(t, r.Failed())

	err, _ := r.Err()
	assert.Contains(t, err.Message(), "is negative")
	assert.Equal(t, "recovered panic: is negative", err.Error())
	assert.Equal(t, runtimeFailure{msg: "is negative"}, err.Value())

	var rf runtimeFailure
	assert.True(t, errors.As(err, &rf))
}

func TestFromPanic_OtherPanicsPassThrough(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "not a runtime failure", func() {
		FromPanic[runtimeFailure](func() int { panic("not a runtime failure") })
	})
}

func TestFromPanic_InterfaceTypeMatchesImplementations(t *testing.T) {
	t.Parallel()

	r := FromPanic[error](func() string { panic(runtimeFailure{msg: "boom"}) })
	err, ok := r.Err()
	require.True(t, ok)
	assert.Equal(t, "recovered panic: boom", err.Message())
}

func TestFromPanicAs_EnrichesCallerError(t *testing.T) {
	t.Parallel()

	r := FromPanicAs[runtimeFailure](func() int { return positiveOnlySquarePanics(-3) }, New(""))
	err, ok := r.Err()
	require.True(t, ok)
	assert.Equal(t, DefaultGrowableMessage+"::is negative", err.Error())

	ok2 := FromPanicAs[runtimeFailure](func() int { return positiveOnlySquarePanics(3) }, New(""))
	assert.Equal(t, 9, ok2.ValueOr(0))
}

type stringer struct{}

func (stringer) String() string { return "stringer value" }

func TestDescribe_PanicValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<nil>", describe(nil))
	assert.Equal(t, "text", describe("text"))
	assert.Equal(t, "e", describe(errors.New("e")))
	assert.Equal(t, "stringer value", describe(stringer{}))
	assert.Equal(t, "42", describe(42))
}

func TestPanicError_UnwrapOnlyForErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, (&PanicError{value: "plain"}).Unwrap())
	cause := errors.New("cause")
	assert.Same(t, cause, (&PanicError{value: cause}).Unwrap())
}
