// format.go: fmt.Formatter implementations for the built-in errors.
//
// Behavior:
//
//	%s, %v   concise string (Error()).
//	%q       quoted Error().
//	%+v      verbose, multi-line:
//	           id=<hex id> msg="<base message>"
//	           context:
//	             pkg/file.go:12 -> first frame
//	             second frame
//	           cause: <recursively formatted with %+v>
package xgxresult

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line rendering.
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the multi-line rendering. ctx holds one rendered
// frame per entry; cause is formatted with %+v when non-nil.
func formatVerbose(w io.Writer, e Error, ctx []string, cause error) {
	_, _ = fmt.Fprintf(w, "id=%016x msg=%q", e.ID(), e.Message())
	if len(ctx) > 0 {
		_, _ = io.WriteString(w, "\ncontext:")
		for _, c := range ctx {
			_, _ = io.WriteString(w, "\n  ")
			_, _ = io.WriteString(w, c)
		}
	}
	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}
}

// formatError dispatches on the verb for every built-in variant.
func formatError(s fmt.State, verb rune, e Error, ctx func() []string, cause error) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e, ctx(), cause)
			return
		}
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

func (e *GrowableError) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, e.chain.strings, nil)
}

func (e *StatusCodeError) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, e.chain.strings, e.Unwrap())
}

func (e *PanicError) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, e.chain.strings, e.Unwrap())
}

func (e *ForeignError) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, e.chain.strings, e.err)
}

// Format prints the trail as a single context line, since a BoundedError
// keeps only rendered text.
func (e *BoundedError[B]) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, e.trailLines, nil)
}

func (e *BoundedError[B]) trailLines() []string {
	if e.trail.Len() == 0 {
		return nil
	}
	return []string{e.trail.String()}
}
