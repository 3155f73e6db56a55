package cache

import (
	"context"
	"sync"
	"time"
)

// Page 缓存的完整响应
type Page struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageStore 页面缓存后端
type PageStore interface {
	Get(ctx context.Context, key string) (*Page, bool, error)
	Set(ctx context.Context, key string, page *Page, ttl time.Duration) error
	Clear(ctx context.Context) (int, error)
}

type memoryEntry struct {
	page      Page
	expiresAt time.Time
}

// MemoryPageStore 单进程页面缓存
type MemoryPageStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	Now     func() time.Time
}

func NewMemoryPageStore() *MemoryPageStore {
	return &MemoryPageStore{entries: map[string]memoryEntry{}, Now: time.Now}
}

func (s *MemoryPageStore) Get(_ context.Context, key string) (*Page, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !s.Now().Before(entry.expiresAt) {
		delete(s.entries, key)
		return nil, false, nil
	}
	page := entry.page
	return &page, true, nil
}

func (s *MemoryPageStore) Set(_ context.Context, key string, page *Page, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{page: *page, expiresAt: s.Now().Add(ttl)}
	return nil
}

func (s *MemoryPageStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	s.entries = map[string]memoryEntry{}
	return n, nil
}
