// Package session persists the client's auth session (bearer token plus the
// profile it authenticates) in durable local storage.
//
// The store performs no validation of its contents: it trusts whatever was
// last written. The only exception is a corrupted user payload, which is
// treated as absent rather than surfaced as an error, so a future
// incompatible profile shape degrades to "logged out" instead of crashing.
package session

import (
	"context"

	"github.com/alumnihub/portal-cli/internal/client/models"
)

// Storage keys for the two persisted values.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Store is the durable session storage.
//
// Contract:
//   - Save overwrites both token and user atomically from the caller's
//     perspective.
//   - Clear removes both; it is idempotent (clearing an empty store is a
//     no-op, not an error).
//   - Token returns "" when no session is stored.
//   - User returns (nil, nil) when no user is stored or the stored bytes
//     do not parse.
type Store interface {
	Save(ctx context.Context, token string, user *models.UserProfile) error
	Clear(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*models.UserProfile, error)
	HasToken(ctx context.Context) (bool, error)
}
