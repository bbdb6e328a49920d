// Package auth issues and validates bearer tokens for household members.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/messbook/internal/models"
	"github.com/mmynk/messbook/internal/storage"
)

// Identity is the caller attached to a request.
type Identity struct {
	UserID int64
	Role   models.Role
}

// Authenticator turns bearer tokens into identities and issues tokens for
// existing users. The role is always read from the store, so demoting a
// user takes effect without waiting for their token to expire.
type Authenticator struct {
	users storage.UserStore
	jwt   *JWTManager
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(users storage.UserStore, jwtManager *JWTManager) *Authenticator {
	return &Authenticator{users: users, jwt: jwtManager}
}

// Authenticate validates token and resolves the user it was issued to.
// Tokens for users that no longer exist are rejected with ErrInvalidToken.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (Identity, error) {
	claims, err := a.jwt.Validate(token)
	if err != nil {
		return Identity{}, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return Identity{}, err
	}

	user, err := a.users.GetUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return Identity{}, fmt.Errorf("%w: unknown user %d", ErrInvalidToken, userID)
	}
	if err != nil {
		return Identity{}, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}

	return Identity{UserID: user.ID, Role: user.Role}, nil
}

// IssueToken mints a token for an existing user.
func (a *Authenticator) IssueToken(ctx context.Context, userID int64) (string, error) {
	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return a.jwt.Generate(user)
}
