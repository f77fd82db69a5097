package entity

import "context"

// Logger specifies a contextual, structured logger, satisfied by
// sabot and injected from the entry point.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
