package logger

import "context"

// Logger is the printf-style logging surface shared by every pipeline component.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	// With returns a Logger that attaches key=value to every record.
	With(key string, value any) Logger
}
