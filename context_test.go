// context_test.go: frame rendering and chain semantics.
package xgxresult

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_RendersLocationPrefix(t *testing.T) {
	t.Parallel()

	f := NewFrame(FrameConfig{Message: "test", Line: 10, File: "la.cpp"})
	assert.Equal(t, "la.cpp:10 -> test", f.String())
	assert.Equal(t, "test", f.Message())
	assert.Equal(t, "la.cpp", f.File())
	assert.Equal(t, uint(10), f.Line())
	assert.True(t, f.HasLocation())
}

func TestFrame_BareMessageWithoutLocation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "you may not pass", NewFrame(FrameConfig{Message: "you may not pass"}).String())
	assert.Equal(t, "you may not pass", Note("you may not pass").String())
	assert.False(t, Note("x").HasLocation())
}

func TestFrame_PartialLocationStillRendersPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "main.go:0 -> m", At("m", "main.go", 0).String())
	assert.Equal(t, ":7 -> m", At("m", "", 7).String())
}

func TestFrame_FieldsAreTruncatedToContextCapacity(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("m", 200)
	f := At(long, strings.Repeat("f", 200), 1)
	assert.Len(t, f.Message(), 127)
	assert.Len(t, f.File(), 127)
}

func TestFrames_RenderJoinsInAttachOrder(t *testing.T) {
	t.Parallel()

	var c frames
	assert.Equal(t, "base", c.render("base"))

	fs := []Frame{At("a", "x.go", 1), Note("b"), At("c", "y.go", 3)}
	want := "base"
	for _, f := range fs {
		c = c.push(f)
		want += "::" + f.String()
		require.Equal(t, want, c.render("base"))
	}
	assert.Equal(t, []string{"x.go:1 -> a", "b", "y.go:3 -> c"}, c.strings())
}

func TestFrames_CloneSharesNothing(t *testing.T) {
	t.Parallel()

	c := frames{Note("one")}
	cp := c.clone()
	cp[0] = Note("changed")
	assert.Equal(t, "one", c[0].Message())

	var empty frames
	assert.Nil(t, empty.clone())
}
