package security

import (
	"Yatube/internal/pkg/consts"
	"Yatube/internal/pkg/redis"
	"context"
	"sync"
	"time"
)

// Revocation 登出后的 Token 黑名单
type Revocation interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RedisRevocation 以签名为 key 写入 Redis，过期时间与 Token 一致
type RedisRevocation struct{}

func NewRedisRevocation() *RedisRevocation {
	return &RedisRevocation{}
}

func (s *RedisRevocation) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	signature, err := ExtractSignature(token)
	if err != nil {
		return err
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", ttl)
}

func (s *RedisRevocation) IsRevoked(ctx context.Context, token string) (bool, error) {
	signature, err := ExtractSignature(token)
	if err != nil {
		return true, nil
	}
	value, err := redis.GetValue(ctx, consts.TokenBlacklistKey+signature)
	if err != nil {
		return false, err
	}
	return value != "", nil
}

// MemoryRevocation 单进程黑名单，用于测试与本地开发
type MemoryRevocation struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryRevocation() *MemoryRevocation {
	return &MemoryRevocation{revoked: map[string]time.Time{}}
}

func (s *MemoryRevocation) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	signature, err := ExtractSignature(token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[signature] = expiresAt
	return nil
}

func (s *MemoryRevocation) IsRevoked(_ context.Context, token string) (bool, error) {
	signature, err := ExtractSignature(token)
	if err != nil {
		return true, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	expiresAt, ok := s.revoked[signature]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiresAt) {
		delete(s.revoked, signature)
		return false, nil
	}
	return true, nil
}
