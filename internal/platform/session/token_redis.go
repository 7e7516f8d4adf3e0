// Package session stores issued bearer tokens in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"student_portal/internal/feature/auth/domain/entity"
	"student_portal/internal/feature/auth/usecase"

	"github.com/redis/go-redis/v9"
)

// TokenRedis implements usecase.TokenRepository using Redis.
// Each token is a JSON value whose TTL matches the token's expiry, so Redis
// evicts expired tokens on its own.
type TokenRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.TokenRepository = (*TokenRedis)(nil)

// NewTokenRedis creates a new TokenRedis instance.
func NewTokenRedis(client *redis.Client, prefix string) *TokenRedis {
	return &TokenRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key for a token.
func (r *TokenRedis) tokenKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// identityKey returns the Redis key for the set of tokens issued to one identity.
func (r *TokenRedis) identityKey(kind entity.Kind, id uint) string {
	return fmt.Sprintf("%s:%s:%d", r.prefix, kind, id)
}

// Create persists a new token to Redis.
func (r *TokenRedis) Create(ctx context.Context, token *entity.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("token already expired")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.tokenKey(token.ID), data, ttl)
	pipe.SAdd(ctx, r.identityKey(token.Kind, token.IdentityID), token.ID)
	_, err = pipe.Exec(ctx)
	return err
}

// FindByID retrieves a token by its value.
func (r *TokenRedis) FindByID(ctx context.Context, id string) (*entity.Token, error) {
	data, err := r.client.Get(ctx, r.tokenKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}

	var token entity.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}
	return &token, nil
}

// Revoke marks a token as revoked. The revoked record keeps its remaining TTL.
func (r *TokenRedis) Revoke(ctx context.Context, id string) error {
	token, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	token.RevokedAt = &now

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	return r.client.Set(ctx, r.tokenKey(id), data, redis.KeepTTL).Err()
}

// ListByIdentity returns the live tokens issued to one identity and prunes
// members whose token has already been evicted.
func (r *TokenRedis) ListByIdentity(ctx context.Context, kind entity.Kind, id uint) ([]*entity.Token, error) {
	key := r.identityKey(kind, id)
	ids, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var tokens []*entity.Token
	for _, tid := range ids {
		token, err := r.FindByID(ctx, tid)
		if err != nil {
			if errors.Is(err, usecase.ErrTokenNotFound) {
				r.client.SRem(ctx, key, tid)
				continue
			}
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// RevokeAll revokes every live token of one identity.
func (r *TokenRedis) RevokeAll(ctx context.Context, kind entity.Kind, identityID uint) (int64, error) {
	tokens, err := r.ListByIdentity(ctx, kind, identityID)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, t := range tokens {
		if t.IsRevoked() {
			continue
		}
		if err := r.Revoke(ctx, t.ID); err != nil {
			if errors.Is(err, usecase.ErrTokenNotFound) {
				continue
			}
			return n, err
		}
		n++
	}
	return n, nil
}

// DeleteExpired removes index entries of tokens Redis has already evicted.
// The returned count is the number of pruned entries.
func (r *TokenRedis) DeleteExpired(ctx context.Context) (int64, error) {
	var (
		cursor uint64
		pruned int64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+":*:*", 200).Result()
		if err != nil {
			return pruned, err
		}
		for _, key := range keys {
			if r.client.Type(ctx, key).Val() != "set" {
				continue
			}
			ids, err := r.client.SMembers(ctx, key).Result()
			if err != nil {
				return pruned, err
			}
			for _, tid := range ids {
				n, err := r.client.Exists(ctx, r.tokenKey(tid)).Result()
				if err != nil {
					return pruned, err
				}
				if n == 0 {
					r.client.SRem(ctx, key, tid)
					pruned++
				}
			}
		}
		cursor = next
		if cursor == 0 {
			return pruned, nil
		}
	}
}
