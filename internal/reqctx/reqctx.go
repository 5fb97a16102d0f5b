// Package reqctx carries request-scoped values (request ID, resolved
// account ID) through context so the log handler can pick them up
// without threading them through every call.
package reqctx

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}
type accountIDKey struct{}

// NewID generates a random UUID v4 request ID.
func NewID() string {
	return uuid.NewString()
}

// WithRequestID returns a copy of ctx with the request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID extracts the request ID from ctx. Returns "" if absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithAccountID attaches the authenticated account's ID, set by the
// session middleware once identity is resolved.
func WithAccountID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, accountIDKey{}, id)
}

// AccountID extracts the account ID from ctx. Returns "" if absent.
func AccountID(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey{}).(string)
	return id
}
