// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/auth/transport/http/dto"
	"student_portal/internal/feature/auth/transport/middleware"
	"student_portal/internal/feature/auth/usecase"
	"student_portal/internal/platform/http/apierror"
	"student_portal/internal/platform/logger"
)

// AuthUsecase defines the authentication operations used by the handler.
// Following Go convention, the consumer (handler) declares the interface.
type AuthUsecase interface {
	Login(ctx context.Context, kind entity.Kind, email, password string, meta usecase.LoginMeta) (*usecase.LoginResult, error)
	Logout(ctx context.Context, token string) error
	LogoutAll(ctx context.Context, p entity.Principal) (int64, error)
	Me(ctx context.Context, p entity.Principal) (entity.Identity, error)
}

// AuthHandler handles login, logout and profile requests.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// StudentLogin handles POST /student/login.
func (h *AuthHandler) StudentLogin(c *gin.Context) { h.login(c, entity.KindStudent) }

// AdminLogin handles POST /admin/login.
func (h *AuthHandler) AdminLogin(c *gin.Context) { h.login(c, entity.KindAdmin) }

// login binds the credentials, checks them against the kind's table and
// returns the token together with the user payload.
//   - 422 with a field map on validation errors
//   - 422 with the generic credentials message on any mismatch
//   - 200 with {token, user} on success
func (h *AuthHandler) login(c *gin.Context, kind entity.Kind) {
	var req dto.LoginReq
	if !apierror.BindJSON(c, &req) {
		logger.Warn().Str("kind", string(kind)).Str("remote_addr", c.ClientIP()).Msg("login validation failed")
		return
	}

	meta := usecase.LoginMeta{UserAgent: c.Request.UserAgent(), IPAddress: c.ClientIP()}
	res, err := h.auth.Login(c.Request.Context(), kind, req.Email, req.Password, meta)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// Do not expose which field was wrong.
			logger.Warn().Str("kind", string(kind)).Str("email", req.Email).Str("remote_addr", c.ClientIP()).Msg("login failed")
			apierror.InvalidCredentials(c)
			return
		}
		logger.Error().Err(err).Str("kind", string(kind)).Msg("login error")
		apierror.Internal(c)
		return
	}

	logger.Info().Str("kind", string(kind)).Str("email", req.Email).Str("remote_addr", c.ClientIP()).Msg("login successful")
	c.JSON(http.StatusOK, dto.LoginRes{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		UserType:  string(res.User.Kind()),
		User:      dto.UserFromIdentity(res.User),
	})
}

// Logout handles POST /logout by revoking the presented token.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			apierror.Unauthorized(c)
			return
		}
		logger.Error().Err(err).Msg("logout error")
		apierror.Internal(c)
		return
	}
	c.JSON(http.StatusOK, apierror.MessageResponse{Message: "Logged out."})
}

// LogoutAll handles POST /logout/all by revoking every token of the caller.
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		apierror.Unauthorized(c)
		return
	}
	n, err := h.auth.LogoutAll(c.Request.Context(), p)
	if err != nil {
		logger.Error().Err(err).Msg("logout all error")
		apierror.Internal(c)
		return
	}
	logger.Info().Str("kind", string(p.Kind)).Uint("id", p.ID).Int64("revoked", n).Msg("all sessions revoked")
	c.JSON(http.StatusOK, dto.LogoutAllRes{Message: "Logged out of all sessions.", Revoked: n})
}

// Me handles GET /me.
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		apierror.Unauthorized(c)
		return
	}
	identity, err := h.auth.Me(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			// The account was removed after the token was issued.
			apierror.Unauthorized(c)
			return
		}
		logger.Error().Err(err).Msg("me error")
		apierror.Internal(c)
		return
	}
	c.JSON(http.StatusOK, dto.MeRes{UserType: string(identity.Kind()), User: dto.UserFromIdentity(identity)})
}
