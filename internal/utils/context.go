// Package utils provides general-purpose helpers used across the ticket
// service: type-safe context keys, JWT creation and validation, message
// template formatting, JSON response writing and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the id of the authenticated caller, as decoded
	// from the bearer token.
	UserIDCtxKey = contextKey("userID")

	// BearerTokenCtxKey stores the raw bearer token of the request so that
	// outbound calls can forward it.
	BearerTokenCtxKey = contextKey("bearerToken")
)

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id.
//
// ok is false when no id is stored, the stored value is not a string or it
// is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithBearerToken returns a copy of ctx carrying the raw bearer token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, BearerTokenCtxKey, token)
}

// GetBearerTokenFromContext retrieves the raw bearer token propagated by the
// request pipeline.
func GetBearerTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(BearerTokenCtxKey).(string)
	return token, ok && token != ""
}
