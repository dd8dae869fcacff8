package xgxresult

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}

func TestGrowableFormatting_ConciseAndVerbose(t *testing.T) {
	t.Parallel()

	err := New("lookup failed")
	err.ConsumeContext(At("reading row", "store/db.go", 41))
	err.ConsumeContext(Note("loading user"))

	concise := fmt.Sprintf("%v", err)
	assert.Equal(t, err.Error(), concise)
	assert.Equal(t, concise, fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", concise), fmt.Sprintf("%q", err))

	verbose := fmt.Sprintf("%+v", err)
	for _, w := range []string{
		fmt.Sprintf("id=%016x", err.ID()),
		`msg="lookup failed"`,
		"\ncontext:",
		"\n  store/db.go:41 -> reading row",
		"\n  loading user",
	} {
		assert.Contains(t, verbose, w)
	}
	assert.True(t, containsInOrder(verbose, "context:", "reading row", "loading user"),
		"context order not preserved in verbose: %q", verbose)
	assert.NotContains(t, verbose, "\ncause:", "growable error has no cause")
}

func TestStatusFormatting_VerboseShowsCause(t *testing.T) {
	t.Parallel()

	err := NewStatusCodeError(Errno(syscall.ERANGE))
	err.ConsumeContext(Note("squaring"))

	verbose := fmt.Sprintf("%+v", err)
	for _, w := range []string{`msg="system status 34`, "\n  squaring", "\ncause: " + syscall.ERANGE.Error()} {
		assert.Contains(t, verbose, w)
	}
}

func TestNestedCause_VerboseRecurses(t *testing.T) {
	t.Parallel()

	inner := New("disk full")
	inner.ConsumeContext(Note("flush"))
	outer := NewForeignError(fmt.Errorf("persist: %w", inner))
	outer.ConsumeContext(Note("commit"))

	verbose := fmt.Sprintf("%+v", outer)
	assert.True(t, containsInOrder(verbose,
		`msg="persist: disk full::flush"`, "\n  commit", "\ncause: ", "persist: disk full::flush"),
		"unexpected verbose output:\n%s", verbose)
}

func TestBoundedFormatting_TrailAsSingleLine(t *testing.T) {
	t.Parallel()

	err := NewBoundedError[[128]byte]("")
	assert.NotContains(t, fmt.Sprintf("%+v", err), "context:", "empty trail prints no context section")

	err.ConsumeContext(Note("a"))
	err.ConsumeContext(Note("b"))
	assert.Contains(t, fmt.Sprintf("%+v", err), "\ncontext:\n  ::a::b")
}

func TestFormat_JoinedLeavesAppearInDefaultString(t *testing.T) {
	t.Parallel()

	a := New("first")
	b := NewStatusCodeError(Errno(syscall.ENOENT))
	s := fmt.Sprintf("%v", errors.Join(a, b))
	assert.Contains(t, s, a.Error())
	assert.Contains(t, s, b.Error())
}
