package observability

import "go.uber.org/zap"

// ZapLogger adapts a *zap.Logger to the Logger interface. It backs the
// default (non-nop) logger used by the cmd/sapc CLI; library code only
// ever depends on the Logger interface above.
type ZapLogger struct {
	z *zap.Logger
}

// NewZapLogger wraps z as a Logger.
func NewZapLogger(z *zap.Logger) ZapLogger { return ZapLogger{z: z} }

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key(), f.Value()))
	}
	return out
}

func (l ZapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZapFields(fields)...) }
func (l ZapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, toZapFields(fields)...) }
func (l ZapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l ZapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, toZapFields(fields)...) }

func (l ZapLogger) With(fields ...Field) Logger {
	return ZapLogger{z: l.z.With(toZapFields(fields)...)}
}

var _ Logger = ZapLogger{}
