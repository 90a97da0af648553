package api

import (
	"context"
	"time"

	"github.com/stadtwache/stadtwache-api/models"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

type contextKey int

const (
	adminKey contextKey = iota
	requestIDKey
)

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

// WithAdmin stores the authenticated admin on the context
func WithAdmin(ctx context.Context, admin *models.AdminUser) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// AdminFromContext returns the admin set by AdminMiddleware, if any
func AdminFromContext(ctx context.Context) (*models.AdminUser, bool) {
	admin, ok := ctx.Value(adminKey).(*models.AdminUser)
	return admin, ok && admin != nil
}

// WithRequestID stores the request id on the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the id assigned by RequestLogger
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
