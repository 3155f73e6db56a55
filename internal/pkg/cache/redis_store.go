package cache

import (
	"Yatube/internal/pkg/consts"
	"Yatube/internal/pkg/redis"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// RedisPageStore 以 JSON 形式把页面存入 Redis，多实例共享
type RedisPageStore struct {
	prefix string
}

func NewRedisPageStore() *RedisPageStore {
	return &RedisPageStore{prefix: consts.PageCacheKey}
}

func (s *RedisPageStore) Get(ctx context.Context, key string) (*Page, bool, error) {
	raw, ok, err := redis.GetBytes(ctx, s.prefix+key)
	if err != nil || !ok {
		return nil, false, err
	}

	var page Page
	if err = json.Unmarshal(raw, &page); err != nil {
		// 格式不对的条目直接丢弃
		_ = redis.DeleteKey(ctx, s.prefix+key)
		return nil, false, nil
	}
	return &page, true, nil
}

func (s *RedisPageStore) Set(ctx context.Context, key string, page *Page, ttl time.Duration) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("marshal page: %w", err)
	}
	return redis.SetWithExpiration(ctx, s.prefix+key, raw, ttl)
}

func (s *RedisPageStore) Clear(ctx context.Context) (int, error) {
	return redis.DeleteByPrefix(ctx, s.prefix)
}
