// Package auth provides identity verification for bearer credentials.
package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// emailContextKey is the context key for the verified account email.
const emailContextKey contextKey = "auth_email"

// ContextWithEmail binds the verified account email to the context.
func ContextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey, email)
}

// EmailFromContext retrieves the verified account email from the context.
// Returns an empty string if the request was not authenticated.
func EmailFromContext(ctx context.Context) string {
	email, ok := ctx.Value(emailContextKey).(string)
	if !ok {
		return ""
	}
	return email
}
