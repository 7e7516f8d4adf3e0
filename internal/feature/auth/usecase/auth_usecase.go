package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"student_portal/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// tokenBytes is the entropy of an issued token; the hex form is twice as long.
	tokenBytes = 32

	// dummyHash keeps login timing identical whether or not the account exists.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// LoginMeta carries request details recorded with an issued token.
type LoginMeta struct {
	UserAgent string
	IPAddress string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entity.Identity
}

// authUsecase implements login, token validation and logout.
type authUsecase struct {
	students StudentRepository
	admins   AdminRepository
	tokens   TokenRepository
	tokenTTL time.Duration
	now      func() time.Time
}

// NewAuthUsecase creates a new authUsecase. Tokens expire tokenTTL after issue.
func NewAuthUsecase(students StudentRepository, admins AdminRepository, tokens TokenRepository, tokenTTL time.Duration) *authUsecase {
	return &authUsecase{
		students: students,
		admins:   admins,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// generateToken returns a cryptographically random 64-character hex string.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// findIdentity looks the email up in the table of the given kind.
// It returns the identity and its stored hash.
func (u *authUsecase) findIdentity(ctx context.Context, kind entity.Kind, email string) (entity.Identity, string, error) {
	switch kind {
	case entity.KindStudent:
		s, err := u.students.FindByEmail(ctx, email)
		if err != nil {
			return entity.Identity{}, "", err
		}
		return entity.StudentIdentity(s), s.Password, nil
	case entity.KindAdmin:
		a, err := u.admins.FindByEmail(ctx, email)
		if err != nil {
			return entity.Identity{}, "", err
		}
		return entity.AdminIdentity(a), a.Password, nil
	}
	return entity.Identity{}, "", ErrUnknownKind
}

// Login verifies the credentials against the kind's table and issues a new token.
// Prior tokens of the same identity stay valid.
func (u *authUsecase) Login(ctx context.Context, kind entity.Kind, email, password string, meta LoginMeta) (*LoginResult, error) {
	identity, hash, err := u.findIdentity(ctx, kind, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up %s: %w", kind, err)
	}

	// Always compare, even for a missing account.
	passwordHash := dummyHash
	if err == nil {
		passwordHash = hash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	id, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	now := u.now()
	token := &entity.Token{
		ID:         id,
		Kind:       kind,
		IdentityID: identity.ID(),
		UserAgent:  meta.UserAgent,
		IPAddress:  meta.IPAddress,
		CreatedAt:  now,
		ExpiresAt:  now.Add(u.tokenTTL),
	}
	if err := u.tokens.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &LoginResult{Token: id, ExpiresAt: token.ExpiresAt, User: identity}, nil
}

// Authenticate resolves a bearer token to the identity it is bound to.
func (u *authUsecase) Authenticate(ctx context.Context, token string) (entity.Principal, error) {
	if token == "" {
		return entity.Principal{}, ErrUnauthorized
	}
	t, err := u.tokens.FindByID(ctx, token)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return entity.Principal{}, ErrUnauthorized
		}
		return entity.Principal{}, fmt.Errorf("failed to load token: %w", err)
	}
	if t.IsRevoked() || !u.now().Before(t.ExpiresAt) {
		return entity.Principal{}, ErrUnauthorized
	}
	return t.Principal(), nil
}

// Logout revokes the token. Unknown tokens are reported as ErrUnauthorized.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if err := u.tokens.Revoke(ctx, token); err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// LogoutAll revokes every token of the caller, including the presented one.
func (u *authUsecase) LogoutAll(ctx context.Context, p entity.Principal) (int64, error) {
	n, err := u.tokens.RevokeAll(ctx, p.Kind, p.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return n, nil
}

// Me loads the full account behind a principal.
func (u *authUsecase) Me(ctx context.Context, p entity.Principal) (entity.Identity, error) {
	switch p.Kind {
	case entity.KindStudent:
		s, err := u.students.FindByID(ctx, p.ID)
		if err != nil {
			return entity.Identity{}, err
		}
		return entity.StudentIdentity(s), nil
	case entity.KindAdmin:
		a, err := u.admins.FindByID(ctx, p.ID)
		if err != nil {
			return entity.Identity{}, err
		}
		return entity.AdminIdentity(a), nil
	}
	return entity.Identity{}, ErrUnknownKind
}

// PurgeExpired deletes expired tokens from the store.
func (u *authUsecase) PurgeExpired(ctx context.Context) (int64, error) {
	return u.tokens.DeleteExpired(ctx)
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
