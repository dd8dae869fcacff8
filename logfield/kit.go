package logfield

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Keyvals returns go-kit key/value pairs for err: "err" with the rendered
// text, then "err_id" and "err_context" when available. A nil err yields nil.
func Keyvals(err error) []any {
	if err == nil {
		return nil
	}
	rec := Snapshot(err)
	kv := []any{"err", rec.Rendered}
	if rec.ID != "" {
		kv = append(kv, "err_id", rec.ID)
	}
	if len(rec.Context) > 0 {
		kv = append(kv, "err_context", strings.Join(rec.Context, " | "))
	}
	return kv
}

// Error logs msg and err at error level on logger, in the
// level.Error(logger).Log("msg", ..., "err", ...) shape.
func Error(logger log.Logger, msg string, err error) error {
	kv := append([]any{"msg", msg}, Keyvals(err)...)
	return level.Error(logger).Log(kv...)
}
