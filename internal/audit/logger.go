package audit

import (
	"context"
)

// Entry describes one auditable action.
type Entry struct {
	EmployeeID   *int64
	Action       string
	ResourceType string
	ResourceID   string
	Details      map[string]interface{}
}

// Logger defines the interface for auditing operations
type Logger interface {
	// Log records entry together with the request metadata found in ctx.
	Log(ctx context.Context, entry Entry) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// Log implements Logger.Log
func (l *NoOpLogger) Log(ctx context.Context, entry Entry) error {
	return nil
}

// Request is the client metadata attached to audit entries.
type Request struct {
	ClientIP  string
	UserAgent string
	RequestID string
}

type requestKey struct{}

// WithRequest stores client metadata for later audit entries.
func WithRequest(ctx context.Context, req Request) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

func RequestFromContext(ctx context.Context) (Request, bool) {
	req, ok := ctx.Value(requestKey{}).(Request)
	return req, ok
}
