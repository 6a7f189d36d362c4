package repository

import "context"

// TokenStore is the server-side allow-list of issued bearer tokens. A token
// authenticates only while it is present here, so removing it revokes the
// session even though the signature stays valid. The signing mechanism is an
// implementation detail behind Issue.
type TokenStore interface {
	// Issue signs a token for the principal and records it.
	Issue(ctx context.Context, principalID string) (string, error)
	// IsValid reports whether the token is still recorded.
	IsValid(ctx context.Context, token string) (bool, error)
	// Revoke removes the token from the store.
	Revoke(ctx context.Context, token string) error
}

// ResetTokenStore holds short-lived password-reset tokens bound to a user.
type ResetTokenStore interface {
	// Create records a fresh reset token for the user and returns it.
	Create(ctx context.Context, userID string) (string, error)
	// Consume resolves a token to its user id and deletes it. Expired or
	// unknown tokens fail.
	Consume(ctx context.Context, token string) (string, error)
}
