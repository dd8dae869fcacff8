package logfield

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap returns a zap field that encodes err as an object with message, id,
// context and rendered keys. A nil err yields zap.Skip().
//
//	logger.Error("request failed", logfield.Zap("error", err))
func Zap(key string, err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.Object(key, Snapshot(err))
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (r Record) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", r.Message)
	if r.ID != "" {
		enc.AddString("id", r.ID)
	}
	if len(r.Context) > 0 {
		if err := enc.AddArray("context", contextArray(r.Context)); err != nil {
			return err
		}
	}
	enc.AddString("rendered", r.Rendered)
	return nil
}

// contextArray encodes frames in attach order.
type contextArray []string

func (c contextArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, s := range c {
		enc.AppendString(s)
	}
	return nil
}
