// wrap_test.go: attaching context to Results.
package xgxresult

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers -----------------------------------------------------------------

func chainOf(t *testing.T, err error) []string {
	t.Helper()
	var out []string
	for _, f := range FramesOf(err) {
		out = append(out, f.String())
	}
	return out
}

func leafFailure() Result[int, *GrowableError] {
	return AttachContext(Fail[int](New("")), At("leaf", "store/row.go", 60))
}

func middleHop() Result[int, *GrowableError] {
	return AttachContext(leafFailure(), At("middle", "store/tenant.go", 70))
}

func outerHop() Result[int, *GrowableError] {
	return AttachContext(middleHop(), At("outer", "api/admit.go", 80))
}

// ---- tests: AttachContext ----------------------------------------------------

func TestAttachContext_SuccessUnchanged(t *testing.T) {
	t.Parallel()

	r := AttachContext(Ok[int, *GrowableError](9), Note("ignored"))
	v, ok := r.Value()
	require.True(t, ok, "AttachContext changed a success")
	assert.Equal(t, 9, v)
}

func TestAttachContext_KeepsBranchAndError(t *testing.T) {
	t.Parallel()

	e := New("base")
	r := AttachContext(Fail[int](e), Note("hop"))
	got, ok := r.Err()
	require.True(t, ok, "AttachContext turned a failure into a success")
	assert.Same(t, e, got, "AttachContext must relay the same error instance")
	assert.Equal(t, 1, got.Len())
}

func TestAttachContext_MultiHopOrder(t *testing.T) {
	t.Parallel()

	_, err := outerHop().Get()
	require.Error(t, err)

	want := []string{
		"store/row.go:60 -> leaf",
		"store/tenant.go:70 -> middle",
		"api/admit.go:80 -> outer",
	}
	assert.Empty(t, cmp.Diff(want, chainOf(t, err)), "chain mismatch (-want +got)")

	wantText := DefaultGrowableMessage +
		"::store/row.go:60 -> leaf::store/tenant.go:70 -> middle::api/admit.go:80 -> outer"
	assert.Equal(t, wantText, err.Error())
}

func TestAttachContext_BoundedVariant(t *testing.T) {
	t.Parallel()

	r := AttachContext(Fail[int](NewBoundedError[[256]byte]("")), At("first", "a.go", 1))
	r = AttachContext(r, Note("second"))
	err, _ := r.Err()
	assert.Equal(t, DefaultBoundedMessage+"::a.go:1 -> first::second", err.Error())
}

// ---- tests: AttachContextFunc / Ctx -----------------------------------------

func TestAttachContextFunc_BuilderOnlyOnFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	build := func() Frame {
		calls++
		return Note("built")
	}

	AttachContextFunc(Ok[int, *GrowableError](1), build)
	assert.Zero(t, calls, "builder ran on success path")

	r := AttachContextFunc(Fail[int](New("")), build)
	assert.Equal(t, 1, calls)
	err, _ := r.Err()
	assert.Empty(t, cmp.Diff([]string{"built"}, chainOf(t, err)))
}

func TestCtx_SuccessUnchanged(t *testing.T) {
	t.Parallel()

	r := Ctx(Ok[string, *GrowableError]("v"), "unused")
	assert.Equal(t, "v", r.ValueOr(""))
}
