package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sportszone/internal/cache"
	"sportszone/internal/model"
	"sportszone/internal/testcontainers"
)

func TestRoleCache_Integration(t *testing.T) {
	client := cache.New(testcontainers.RedisAddr(t), "", 0, nil)
	defer client.Close()
	ctx := context.Background()

	t.Run("emails differing in case are distinct entries", func(t *testing.T) {
		rc := NewRoleCache(client, time.Minute)
		assert.NoError(t, rc.StoreRole(ctx, "Boss@example.com", model.RoleAdmin))

		role, ok := rc.GetRole(ctx, "Boss@example.com")
		assert.True(t, ok)
		assert.Equal(t, model.RoleAdmin, role)

		_, ok = rc.GetRole(ctx, "boss@example.com")
		assert.False(t, ok)
	})

	t.Run("a stale lookup cannot re-cache an invalidated role", func(t *testing.T) {
		rc := NewRoleCache(client, time.Minute)
		assert.NoError(t, rc.StoreRole(ctx, "demoted@example.com", model.RoleAdmin))

		// role changed in the store, then a lookup that read the old role
		// finishes after the invalidation
		assert.NoError(t, rc.InvalidateRole(ctx, "demoted@example.com"))
		assert.NoError(t, rc.StoreRole(ctx, "demoted@example.com", model.RoleAdmin))

		_, ok := rc.GetRole(ctx, "demoted@example.com")
		assert.False(t, ok)
	})
}
