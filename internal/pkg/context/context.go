package context

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// AdminKey is the key for the admin subject in context
	AdminKey ContextKey = "admin"
)

// WithRequestID adds a request ID to the context, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithAdmin adds the admin subject to the context
func WithAdmin(ctx context.Context, admin string) context.Context {
	return context.WithValue(ctx, AdminKey, admin)
}

// GetAdmin retrieves the admin subject from context
func GetAdmin(ctx context.Context) string {
	if admin, ok := ctx.Value(AdminKey).(string); ok {
		return admin
	}
	return ""
}
