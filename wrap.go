// wrap.go: attaching context to a failed Result.
//
// All helpers leave a successful Result untouched and never change the
// branch; they only enrich the failure's trail before it is relayed.
package xgxresult

// AttachContext hands f to the failure in r and returns r. A successful r is
// returned unchanged and f is ignored.
func AttachContext[T any, E Error](r Result[T, E], f Frame) Result[T, E] {
	if r.failed {
		r.err.ConsumeContext(f)
	}
	return r
}

// AttachContextFunc is AttachContext with a frame built only on failure.
func AttachContextFunc[T any, E Error](r Result[T, E], build func() Frame) Result[T, E] {
	if r.failed {
		r.err.ConsumeContext(build())
	}
	return r
}

// Ctx attaches a frame for msg located at the caller of Ctx. The location
// is resolved only when r failed, so the success path costs a branch.
//
//	return Ctx(loadConfig(path), "loading config")
func Ctx[T any, E Error](r Result[T, E], msg string) Result[T, E] {
	if r.failed {
		r.err.ConsumeContext(hereSkip(msg, 1))
	}
	return r
}
