package storage

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryObject struct {
	data         []byte
	contentType  string
	lastModified time.Time
}

// MemoryStore 进程内的 ObjectStore，用于测试
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]memoryObject
	baseURL string
	Now     func() time.Time
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{objects: map[string]memoryObject{}, baseURL: strings.TrimSuffix(baseURL, "/"), Now: time.Now}
}

func (s *MemoryStore) Put(_ context.Context, key string, reader io.Reader, _ int64, contentType string) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = memoryObject{data: buf.Bytes(), contentType: contentType, lastModified: s.Now()}
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryStore) List(_ context.Context, prefix string) ([]ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []ObjectInfo
	for k, v := range s.objects {
		if strings.HasPrefix(k, prefix) {
			res = append(res, ObjectInfo{Key: k, Size: int64(len(v.data)), LastModified: v.lastModified})
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Key < res[j].Key })
	return res, nil
}

func (s *MemoryStore) URL(key string) string {
	return s.baseURL + "/" + key
}

// Get 测试中读取对象内容
func (s *MemoryStore) Get(key string) ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	return obj.data, obj.contentType, ok
}

// Touch 修改对象时间，测试过期清理
func (s *MemoryStore) Touch(key string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if obj, ok := s.objects[key]; ok {
		obj.lastModified = at
		s.objects[key] = obj
	}
}
