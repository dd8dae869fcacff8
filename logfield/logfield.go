// Package logfield exposes xgx-result errors to structured loggers.
//
// The core package never logs. Callers that do log hand the final error to
// one of these helpers so the base message, the ID and every context frame
// arrive as separate fields instead of one long "::"-joined string.
package logfield

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	xgxresult "github.com/xgx-io/xgx-result"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// trailer is implemented by errors that keep rendered context only.
type trailer interface{ Trail() string }

// Record is a flat view of an error for log sinks.
type Record struct {
	// Message is the base message, or Error() for errors outside this module.
	Message string `json:"message"`
	// ID is the hex form of the error ID; empty for foreign errors.
	ID string `json:"id,omitempty"`
	// Context lists rendered frames in attach order.
	Context []string `json:"context,omitempty"`
	// Rendered is the full Error() text.
	Rendered string `json:"rendered"`
}

// Snapshot builds a Record for err. A nil err yields the zero Record.
func Snapshot(err error) Record {
	if err == nil {
		return Record{}
	}
	text := err.Error()
	rec := Record{Message: text, Rendered: text}
	if id, ok := xgxresult.IDOf(err); ok {
		rec.ID = fmt.Sprintf("%016x", id)
	}
	var base xgxresult.Error
	if errors.As(err, &base) {
		rec.Message = base.Message()
	}
	for _, f := range xgxresult.FramesOf(err) {
		rec.Context = append(rec.Context, f.String())
	}
	if len(rec.Context) == 0 {
		var b trailer
		if errors.As(err, &b) && b.Trail() != "" {
			rec.Context = []string{b.Trail()}
		}
	}
	return rec
}

// JSON renders Snapshot(err) as a JSON object.
func JSON(err error) ([]byte, error) {
	return json.Marshal(Snapshot(err))
}
