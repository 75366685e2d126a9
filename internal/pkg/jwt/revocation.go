package jwt

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers revoked access tokens until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked_token:" + hex.EncodeToString(sum[:])
}

type redisRevocationStore struct {
	rdb *redis.Client
}

// NewRedisRevocationStore shares revocations across API instances.
func NewRedisRevocationStore(rdb *redis.Client) RevocationStore {
	return &redisRevocationStore{rdb: rdb}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, tokenKey(token), 1, ttl).Err()
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type memoryRevocationStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore is the single-instance fallback when Redis is not configured.
func NewMemoryRevocationStore() RevocationStore {
	return &memoryRevocationStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, exp := range s.entries {
		if !exp.After(now) {
			delete(s.entries, k)
		}
	}
	s.entries[tokenKey(token)] = now.Add(ttl)
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.entries[tokenKey(token)]
	return ok && exp.After(s.now()), nil
}
