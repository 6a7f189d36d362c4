package middleware

import (
	"context"
	"errors"
	"net/http"

	"upsc_portal/internal/common"
	"upsc_portal/internal/common/security"
	"upsc_portal/internal/domain/repository"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey  contextKey = "userID"
	AdminIDCtxKey contextKey = "adminID"
)

// Auth carries the dependencies both authenticators share: the token
// allow-list for the revocation check and the admin repository for scoping.
type Auth struct {
	tokens repository.TokenStore
	admins repository.AdminRepository
}

func NewAuth(tokens repository.TokenStore, admins repository.AdminRepository) *Auth {
	return &Auth{tokens: tokens, admins: admins}
}

// verify runs the shared token checks: bearer token present, signature valid
// (done upstream by jwtauth.Verifier), and still recorded in the store. A
// token that verifies cryptographically but has been revoked is rejected.
func (a *Auth) verify(r *http.Request) (string, error) {
	raw := jwtauth.TokenFromHeader(r)
	if raw == "" {
		return "", common.Errorf("authorization token required: %w", common.ErrUnauthorized)
	}

	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return "", common.Errorf("invalid token: %w", common.ErrUnauthorized)
	}

	valid, err := a.tokens.IsValid(r.Context(), raw)
	if err != nil {
		return "", common.Errorf("failed to check token: %w", err)
	}
	if !valid {
		return "", common.Errorf("token revoked or unknown: %w", common.ErrUnauthorized)
	}

	id, err := security.PrincipalFromClaims(claims)
	if err != nil {
		return "", common.Errorf("invalid token claims: %w", common.ErrUnauthorized)
	}
	return id, nil
}

// User authenticates end-user routes and attaches the user id to the context.
func (a *Auth) User(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := a.verify(r)
		if err != nil {
			common.RespondWithError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), UserIDCtxKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Admin authenticates admin routes. On top of the shared checks, the
// principal must resolve to an admin record; a user token is not enough.
func (a *Auth) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := a.verify(r)
		if err != nil {
			common.RespondWithError(w, err)
			return
		}
		if _, err := a.admins.FindByID(r.Context(), id); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				common.RespondWithError(w, common.Errorf("admin access required: %w", common.ErrForbidden))
				return
			}
			common.RespondWithError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), AdminIDCtxKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDCtxKey).(string)
	return id, ok
}

func GetAdminIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AdminIDCtxKey).(string)
	return id, ok
}
