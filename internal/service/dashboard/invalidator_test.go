package dashboard

import (
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/managely-hr/hr-backend-go/internal/pkg/cache"
	"github.com/stretchr/testify/assert"
)

func TestCacheInvalidator_DeletesAdminEntry(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	redisMock.ExpectDel(adminCacheKey).SetVal(1)

	NewCacheInvalidator(cache.NewJSONCache(db)).InvalidateAdmin(t.Context())

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCacheInvalidator_RedisDownIsNotFatal(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	redisMock.ExpectDel(adminCacheKey).SetErr(errors.New("connection refused"))

	assert.NotPanics(t, func() {
		NewCacheInvalidator(cache.NewJSONCache(db)).InvalidateAdmin(t.Context())
	})
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCacheInvalidator_NoCache(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCacheInvalidator(nil).InvalidateAdmin(t.Context())
		NewCacheInvalidator(cache.NewJSONCache(nil)).InvalidateAdmin(t.Context())
	})
}
