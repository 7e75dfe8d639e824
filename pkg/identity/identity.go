package identity

import "context"

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated operator for a request. The journal
// has exactly one trusted operator, so an Identity carries only the login
// name; "authenticated" is its presence, not a role.
type Identity struct {
	Username string
}

// Get retrieves Identity from context. The second return is false for
// anonymous requests, which is a normal outcome rather than a failure.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
