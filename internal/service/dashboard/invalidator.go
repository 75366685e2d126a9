package dashboard

import (
	"context"
	"log/slog"

	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/managely-hr/hr-backend-go/internal/pkg/cache"
)

type adminCacheInvalidator struct {
	cache *cache.JSONCache
}

// NewCacheInvalidator returns the invalidator for the admin overview cached by
// AdminDashboard. With a nil cache it does nothing.
func NewCacheInvalidator(jsonCache *cache.JSONCache) dashboard.CacheInvalidator {
	return &adminCacheInvalidator{cache: jsonCache}
}

// InvalidateAdmin never fails the caller's write; the entry expires on its
// own within adminCacheTTL.
func (i *adminCacheInvalidator) InvalidateAdmin(ctx context.Context) {
	if err := i.cache.Delete(ctx, adminCacheKey); err != nil {
		slog.Warn("admin dashboard cache invalidation failed", "error", err)
	}
}
