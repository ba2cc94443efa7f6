package model

import "context"

type ctxKey int

const userIDKey ctxKey = iota

// NewContextWithUserID returns a new [context.Context] that carries the id of the authenticated user.
func NewContextWithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserIDFromContext returns the id of the authenticated user stored in ctx, if any.
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}
