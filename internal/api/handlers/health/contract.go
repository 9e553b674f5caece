package health

import "context"

type Database interface {
	PingContext(ctx context.Context) error
}

type Cache interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
