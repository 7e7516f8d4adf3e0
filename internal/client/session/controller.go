package session

import (
	"context"
	"encoding/json"
	"sync"

	"student_portal/internal/client/api"
	"student_portal/internal/platform/logger"
)

// Authenticator is the part of the API the controller needs.
type Authenticator interface {
	Login(ctx context.Context, kind api.Kind, email, password string) (*api.LoginResult, error)
	Revoke(ctx context.Context, token string) error
}

// Controller holds the signed-in identity and mirrors it into Storage.
// It implements api.TokenSource.
type Controller struct {
	storage Storage
	auth    Authenticator

	mu    sync.RWMutex
	token string
	user  api.User
}

var _ api.TokenSource = (*Controller)(nil)

// New restores the session from storage. Stored state that does not parse is
// cleared and the session starts signed out.
func New(storage Storage, auth Authenticator) *Controller {
	c := &Controller{storage: storage, auth: auth}
	c.restore()
	return c
}

func (c *Controller) restore() {
	token, hasToken := c.storage.Get(KeyToken)
	rawUser, hasUser := c.storage.Get(KeyUser)
	userType, hasType := c.storage.Get(KeyUserType)
	if !hasToken && !hasUser && !hasType {
		return
	}

	user, err := api.DecodeUser(api.Kind(userType), []byte(rawUser))
	if err != nil || token == "" {
		logger.Warn().Err(err).Msg("discarding unreadable session state")
		c.clearStorage()
		return
	}
	c.token = token
	c.user = user
}

// Login authenticates against the kind's route. It reports failure as false
// and leaves any existing session untouched.
func (c *Controller) Login(ctx context.Context, email, password string, kind api.Kind) bool {
	res, err := c.auth.Login(ctx, kind, email, password)
	if err != nil {
		logger.Warn().Err(err).Str("kind", string(kind)).Msg("login failed")
		return false
	}
	if err := c.persist(res.Token, res.User); err != nil {
		logger.Error().Err(err).Msg("failed to store session")
		c.mu.RLock()
		prevToken, prevUser := c.token, c.user
		c.mu.RUnlock()
		c.rollback(prevToken, prevUser)
		return false
	}

	c.mu.Lock()
	c.token = res.Token
	c.user = res.User
	c.mu.Unlock()
	return true
}

// Logout revokes the token on a best-effort basis, then clears memory and storage.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	token := c.token
	c.token = ""
	c.user = api.User{}
	c.mu.Unlock()

	if token != "" {
		if err := c.auth.Revoke(ctx, token); err != nil {
			logger.Warn().Err(err).Msg("server-side logout failed")
		}
	}
	c.clearStorage()
}

// Refresh replaces the stored user with a fresh copy. A rejected token ends the session.
func (c *Controller) Refresh(ctx context.Context, fetch func(ctx context.Context) (api.User, error)) error {
	user, err := fetch(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			c.Logout(ctx)
		}
		return err
	}
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if err := c.persist(token, user); err != nil {
		return err
	}
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	return nil
}

// Token returns the bearer token, or "" when signed out.
func (c *Controller) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// User returns the signed-in user; the zero User when signed out.
func (c *Controller) User() api.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// IsAuthenticated reports whether a user is signed in.
func (c *Controller) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.user.IsZero()
}

// UserKind returns the signed-in user's kind, or "".
func (c *Controller) UserKind() api.Kind {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user.Kind()
}

func (c *Controller) persist(token string, user api.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := c.storage.Set(KeyToken, token); err != nil {
		return err
	}
	if err := c.storage.Set(KeyUser, string(raw)); err != nil {
		return err
	}
	return c.storage.Set(KeyUserType, string(user.Kind()))
}

// rollback puts the previous state back into storage after a failed write.
func (c *Controller) rollback(token string, user api.User) {
	if user.IsZero() {
		c.clearStorage()
		return
	}
	if err := c.persist(token, user); err != nil {
		logger.Warn().Err(err).Msg("failed to restore previous session")
	}
}

func (c *Controller) clearStorage() {
	for _, k := range []string{KeyToken, KeyUser, KeyUserType} {
		if err := c.storage.Remove(k); err != nil {
			logger.Warn().Err(err).Str("key", k).Msg("failed to clear session key")
		}
	}
}
