package auth

import (
	"context"
	"strings"
	"time"

	"sportszone/internal/cache"
	"sportszone/internal/model"
)

const (
	roleKeyPrefix  = "role:"
	roleLockPrefix = "role-lock:"

	// invalidationHold blocks re-caching a role for a while after it changed,
	// so a lookup that read the old role cannot write it back.
	invalidationHold = time.Minute
)

// RoleCacheInterface defines the role-by-email cache used by the role gate.
type RoleCacheInterface interface {
	GetRole(ctx context.Context, email string) (model.Role, bool)
	StoreRole(ctx context.Context, email string, role model.Role) error
	InvalidateRole(ctx context.Context, email string) error
}

// RoleCache stores persisted roles in Redis keyed by email. Emails are
// matched exactly, like the stores do. A zero ttl disables caching so every
// lookup hits the store.
type RoleCache struct {
	cache *cache.Client
	ttl   time.Duration
}

// Ensure RoleCache implements RoleCacheInterface
var _ RoleCacheInterface = (*RoleCache)(nil)

// NewRoleCache creates a new role cache.
func NewRoleCache(cache *cache.Client, ttl time.Duration) *RoleCache {
	return &RoleCache{cache: cache, ttl: ttl}
}

func roleKey(email string) string {
	return roleKeyPrefix + strings.TrimSpace(email)
}

func roleLockKey(email string) string {
	return roleLockPrefix + strings.TrimSpace(email)
}

// GetRole returns the cached role for email, if any.
func (s *RoleCache) GetRole(ctx context.Context, email string) (model.Role, bool) {
	if s.ttl <= 0 {
		return "", false
	}
	data, err := s.cache.Get(ctx, roleKey(email))
	if err != nil || data == nil {
		return "", false
	}
	role := model.Role(data)
	if !role.Valid() {
		return "", false
	}
	return role, true
}

// StoreRole caches role for email. It is a no-op while a recent
// invalidation of email is held.
func (s *RoleCache) StoreRole(ctx context.Context, email string, role model.Role) error {
	if s.ttl <= 0 {
		return nil
	}
	return s.cache.SetUnlessGuarded(ctx, roleLockKey(email), roleKey(email), []byte(role), s.ttl)
}

// InvalidateRole drops the cached role for email and holds off re-caching
// for invalidationHold.
func (s *RoleCache) InvalidateRole(ctx context.Context, email string) error {
	if err := s.cache.Set(ctx, roleLockKey(email), []byte("1"), invalidationHold); err != nil {
		return err
	}
	return s.cache.Delete(ctx, roleKey(email))
}
