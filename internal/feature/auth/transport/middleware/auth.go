// Package middleware provides the bearer-token gate used by every protected route.
package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/auth/usecase"
	"student_portal/internal/platform/http/apierror"
	"student_portal/internal/platform/logger"
)

const (
	// ContextPrincipal is the gin context key holding the authenticated entity.Principal.
	ContextPrincipal = "principal"
	// ContextToken is the gin context key holding the raw bearer token.
	ContextToken = "bearerToken"
)

// Authenticator resolves a bearer token to a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entity.Principal, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireAuth rejects requests without a valid bearer token with 401.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierror.Unauthorized(c)
			return
		}

		p, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, usecase.ErrUnauthorized) {
				logger.Error().Err(err).Str("path", c.FullPath()).Msg("token validation failed")
				apierror.Internal(c)
				return
			}
			apierror.Unauthorized(c)
			return
		}

		c.Set(ContextPrincipal, p)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireKind rejects authenticated callers of another kind with 403.
// It must run after RequireAuth.
func RequireKind(kind entity.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			apierror.Unauthorized(c)
			return
		}
		if p.Kind != kind {
			apierror.Forbidden(c)
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by RequireAuth.
func PrincipalFrom(c *gin.Context) (entity.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return entity.Principal{}, false
	}
	p, ok := v.(entity.Principal)
	return p, ok
}

// TokenFrom returns the bearer token stored by RequireAuth.
func TokenFrom(c *gin.Context) string {
	return c.GetString(ContextToken)
}
