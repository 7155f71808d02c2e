package middleware

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Context key type to avoid collisions
type contextKey string

const (
	// UserKey is the context key for the decoded identity
	UserKey contextKey = "user"
)

// Identity is the decoded value of the token's user claim. Its shape is set
// by the issuing side; JSON objects arrive as map[string]interface{}.
type Identity = interface{}

// GetRequestIDFromContext retrieves the request ID set by chi's RequestID middleware
func GetRequestIDFromContext(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// WithUser attaches the decoded identity to the context
func WithUser(ctx context.Context, user Identity) context.Context {
	return context.WithValue(ctx, UserKey, userSlot{value: user})
}

// UserFromContext retrieves the decoded identity. The boolean reports whether
// the gate accepted the request, which is true even when the identity is nil.
func UserFromContext(ctx context.Context) (Identity, bool) {
	slot, ok := ctx.Value(UserKey).(userSlot)
	if !ok {
		return nil, false
	}
	return slot.value, true
}

// userSlot distinguishes an attached nil identity from no identity at all.
type userSlot struct {
	value Identity
}
