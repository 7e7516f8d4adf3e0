// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"student_portal/internal/feature/announcement/domain/entity"
	"student_portal/internal/feature/announcement/usecase"
	"student_portal/internal/platform/logger"
)

// CachingAnnouncementRepository decorates an AnnouncementRepository with Redis caching.
// Reads are served from Redis when possible; any create drops every cached list.
type CachingAnnouncementRepository struct {
	inner     usecase.AnnouncementRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.AnnouncementRepository = (*CachingAnnouncementRepository)(nil)

// NewCachingAnnouncementRepository decorates an AnnouncementRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "announcements".
// A nil rdb disables caching.
func NewCachingAnnouncementRepository(rdb *redis.Client, ttl time.Duration, inner usecase.AnnouncementRepository, namespace string) *CachingAnnouncementRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "announcements"
	}
	return &CachingAnnouncementRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List returns every announcement, checking the cache first.
func (c *CachingAnnouncementRepository) List(ctx context.Context) ([]entity.Announcement, error) {
	return c.cached(ctx, c.cacheKey("all"), func() ([]entity.Announcement, error) {
		return c.inner.List(ctx)
	})
}

// ListByDepartment returns one department's announcements, checking the cache first.
func (c *CachingAnnouncementRepository) ListByDepartment(ctx context.Context, dept entity.Department) ([]entity.Announcement, error) {
	return c.cached(ctx, c.cacheKey("dept", string(dept)), func() ([]entity.Announcement, error) {
		return c.inner.ListByDepartment(ctx, dept)
	})
}

// Create inserts through the inner repository and invalidates all cached lists.
func (c *CachingAnnouncementRepository) Create(ctx context.Context, a *entity.Announcement) error {
	if err := c.inner.Create(ctx, a); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a stale list expires with the TTL anyway.
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		logger.Warn().Err(err).Str("namespace", c.namespace).Msg("announcement cache invalidation failed")
	}
	return nil
}

func (c *CachingAnnouncementRepository) cached(ctx context.Context, key string, load func() ([]entity.Announcement, error)) ([]entity.Announcement, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Announcement
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey joins the namespace and escaped parts with ':'.
func (c *CachingAnnouncementRepository) cacheKey(parts ...string) string {
	key := c.namespace
	for _, p := range parts {
		key = fmt.Sprintf("%s:%s", key, safe(p))
	}
	return key
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingAnnouncementRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
