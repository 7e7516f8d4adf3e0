package entity

import "time"

// Token is an issued bearer token and the identity it is bound to.
type Token struct {
	ID         string     // Opaque token value (64-character hex string)
	Kind       Kind       // Account table of the identity
	IdentityID uint       // Account id within that table
	UserAgent  string     // Client's User-Agent header
	IPAddress  string     // Client's IP address
	CreatedAt  time.Time  // Issue time
	ExpiresAt  time.Time  // Fixed expiry, CreatedAt + TTL
	RevokedAt  *time.Time // Revocation time (nil if active)
}

// IsExpired returns true if the token has passed its expiration time.
func (t *Token) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// IsRevoked returns true if the token has been revoked.
func (t *Token) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsValid returns true if the token is neither expired nor revoked.
func (t *Token) IsValid() bool {
	return !t.IsExpired() && !t.IsRevoked()
}

// Principal returns the identity the token is bound to.
func (t *Token) Principal() Principal {
	return Principal{Kind: t.Kind, ID: t.IdentityID}
}
