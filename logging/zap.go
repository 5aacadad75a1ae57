package logging

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a *zap.Logger to the library Logger interface.
type ZapLogger struct {
	base  *zap.Logger
	level zap.AtomicLevel
}

// NewZapLogger wraps base. A nil base yields a no-op zap logger.
func NewZapLogger(base *zap.Logger) *ZapLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &ZapLogger{base: base, level: zap.NewAtomicLevelAt(zapcore.DebugLevel)}
}

// NewZapProductionLogger builds zap's production config, at debug level when verbose is set.
func NewZapProductionLogger(verbose bool) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{base: base, level: cfg.Level}, nil
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	return z.base.Sync()
}

// zapFields converts Fields to zap fields in key order so output is stable.
func zapFields(fields []Fields) []zap.Field {
	all := merge(nil, fields...)
	if len(all) == 0 {
		return nil
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, all[k]))
	}
	return out
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	if z.level.Enabled(zapcore.DebugLevel) {
		z.base.Debug(msg, zapFields(fields)...)
	}
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	if z.level.Enabled(zapcore.InfoLevel) {
		z.base.Info(msg, zapFields(fields)...)
	}
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	if z.level.Enabled(zapcore.WarnLevel) {
		z.base.Warn(msg, zapFields(fields)...)
	}
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	if z.level.Enabled(zapcore.ErrorLevel) {
		z.base.Error(msg, append(zapFields(fields), zap.Error(err))...)
	}
}

func (z *ZapLogger) WithFields(fields Fields) Logger {
	return &ZapLogger{base: z.base.With(zapFields([]Fields{fields})...), level: z.level}
}

func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return z.WithFields(fields)
	}
	return z
}

// SetLevel changes the shared atomic level, so derived loggers follow it.
func (z *ZapLogger) SetLevel(level Level) {
	switch level {
	case DebugLevel:
		z.level.SetLevel(zapcore.DebugLevel)
	case InfoLevel:
		z.level.SetLevel(zapcore.InfoLevel)
	case WarnLevel:
		z.level.SetLevel(zapcore.WarnLevel)
	default:
		z.level.SetLevel(zapcore.ErrorLevel)
	}
}
