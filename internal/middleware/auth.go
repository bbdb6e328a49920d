package middleware

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/messbook/internal/auth"
	"github.com/mmynk/messbook/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// IdentityKey is the context key for the authenticated caller.
const IdentityKey contextKey = "identity"

// WithIdentity returns a context carrying id.
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

// GetIdentity extracts the caller from the context.
func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(auth.Identity)
	return id, ok
}

// GetUserID extracts the caller's user ID from the context.
// Returns 0 if not found.
func GetUserID(ctx context.Context) int64 {
	id, _ := GetIdentity(ctx)
	return id.UserID
}

// Permits reports whether a caller with role may invoke a procedure that
// requires required. An empty requirement only needs authentication.
func Permits(role, required models.Role) bool {
	switch required {
	case models.RoleAdmin:
		return role == models.RoleAdmin
	case models.RoleStaff:
		return role.CanManageLedger()
	default:
		return true
	}
}

// RequireAuth returns an interceptor that validates bearer tokens and
// enforces per-procedure role requirements. Procedures missing from rules
// only need a valid token.
func RequireAuth(authenticator *auth.Authenticator, rules map[string]models.Role) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			tokenString, err := bearerToken(req.Header().Get("Authorization"))
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			identity, err := authenticator.Authenticate(ctx, tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			procedure := req.Spec().Procedure
			if required := rules[procedure]; !Permits(identity.Role, required) {
				return nil, connect.NewError(connect.CodePermissionDenied,
					fmt.Errorf("%s requires role %s", procedure, required))
			}

			// Call the next handler with enriched context
			return next(WithIdentity(ctx, identity), req)
		}
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}
