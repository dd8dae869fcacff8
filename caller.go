// caller.go: source locations for frames.
//
// Only a single call site is resolved, never a stack: a frame records where
// the failure passed through, and the chain of frames is the trace.
//
// Skip model (same as runtime.Caller): 0 is the function calling
// callerLocation, 1 is its caller, and so on.
package xgxresult

import (
	"runtime"
	"strings"
)

// Here builds a frame for msg located at the caller of Here.
func Here(msg string) Frame {
	return hereSkip(msg, 1)
}

// hereSkip builds a frame located skip frames above its caller.
func hereSkip(msg string, skip int) Frame {
	file, line := callerLocation(skip + 1)
	return NewFrame(FrameConfig{Message: msg, File: file, Line: line})
}

// callerLocation resolves the file and line skip frames above its caller.
// It returns ("", 0) when the runtime cannot resolve the frame.
func callerLocation(skip int) (string, uint) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok || line < 0 {
		return "", 0
	}
	return trimFile(file), uint(line)
}

// trimFile keeps the last two path elements ("pkg/file.go") so the location
// fits a ContextString and stays readable.
func trimFile(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}
	if j := strings.LastIndexByte(path[:i], '/'); j >= 0 {
		return path[j+1:]
	}
	return path
}
