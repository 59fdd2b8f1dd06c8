// Package session holds the server-side session state keyed by the opaque
// cookie token. Nothing client-held is trusted beyond that token: identity and
// role are always resolved against the store on each request.
package session

import (
	"context"               // Context for store operations
	"tapgas/internal/domain" // Role type
)

// Data is the identity bound to a session token
type Data struct {
	Email string      `json:"email"` // Authenticated email
	Role  domain.Role `json:"role"`  // Role captured at verification time
}

// Store creates and resolves sessions
type Store interface {
	// Create binds a fresh opaque token to the given identity and returns it
	Create(ctx context.Context, data Data) (string, error)
	// Get resolves a token; returns (nil, nil) when the token is unknown or expired
	Get(ctx context.Context, token string) (*Data, error)
}
