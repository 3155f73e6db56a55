// Package repotest 提供仓储接口的内存实现，供 service 与 api 测试使用
package repotest

import (
	"Yatube/internal/model"
	"Yatube/internal/repository"
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Store 同时实现 User/Group/Post/Comment/Follow 五个仓储接口
type Store struct {
	mu       sync.Mutex
	seq      uint64
	users    map[uint64]*model.User
	groups   map[uint64]*model.Group
	posts    map[uint64]*model.Post
	comments map[uint64]*model.Comment
	follows  map[uint64]*model.Follow

	// Now 可在测试中替换，保证发布时间严格递增
	Now func() time.Time
}

var (
	_ repository.UserRepo    = (*Store)(nil)
	_ repository.GroupRepo   = (*Store)(nil)
	_ repository.PostRepo    = (*Store)(nil)
	_ repository.CommentRepo = (*Store)(nil)
	_ repository.FollowRepo  = (*Store)(nil)
)

func NewStore() *Store {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var tick int64
	return &Store{
		users:    map[uint64]*model.User{},
		groups:   map[uint64]*model.Group{},
		posts:    map[uint64]*model.Post{},
		comments: map[uint64]*model.Comment{},
		follows:  map[uint64]*model.Follow{},
		Now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}

func (s *Store) nextID() uint64 {
	s.seq++
	return s.seq
}

// ---- users ----

func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	user.ID = s.nextID()
	user.CreatedAt = s.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// ---- groups ----

func (s *Store) CreateGroup(_ context.Context, group *model.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		if g.Slug == group.Slug {
			return repository.ErrDuplicate
		}
	}
	group.ID = s.nextID()
	cp := *group
	s.groups[group.ID] = &cp
	return nil
}

func (s *Store) GetGroup(_ context.Context, id uint64) (*model.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.groups[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, nil
}

func (s *Store) GetGroupBySlug(_ context.Context, slug string) (*model.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) ListGroups(_ context.Context) ([]*model.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := make([]*model.Group, 0, len(s.groups))
	for _, g := range s.groups {
		cp := *g
		groups = append(groups, &cp)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Title < groups[j].Title })
	return groups, nil
}

// ---- posts ----

func (s *Store) CreatePost(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = s.nextID()
	if post.PubDate.IsZero() {
		post.PubDate = s.Now()
	}
	cp := *post
	cp.Author = model.User{}
	cp.Group = nil
	s.posts[post.ID] = &cp
	return nil
}

func (s *Store) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[id]; ok {
		return s.hydratePost(p), nil
	}
	return nil, nil
}

func (s *Store) UpdatePost(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[post.ID]; ok {
		p.Text = post.Text
		p.GroupID = post.GroupID
		p.Image = post.Image
	}
	return nil
}

func (s *Store) ListPosts(_ context.Context, filter repository.PostFilter, limit, offset int) ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := s.filterPosts(filter)
	if offset >= len(matched) {
		return []*model.Post{}, nil
	}
	end := min(len(matched), offset+limit)
	res := make([]*model.Post, 0, end-offset)
	for _, p := range matched[offset:end] {
		res = append(res, s.hydratePost(p))
	}
	return res, nil
}

func (s *Store) CountPosts(_ context.Context, filter repository.PostFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.filterPosts(filter))), nil
}

func (s *Store) ListImageKeys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for _, p := range s.posts {
		if p.Image != "" {
			keys = append(keys, p.Image)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) filterPosts(filter repository.PostFilter) []*model.Post {
	var res []*model.Post
	for _, p := range s.posts {
		if filter.GroupID != 0 && (p.GroupID == nil || *p.GroupID != filter.GroupID) {
			continue
		}
		if filter.AuthorID != 0 && p.AuthorID != filter.AuthorID {
			continue
		}
		if filter.FollowerID != 0 && !s.isFollowing(filter.FollowerID, p.AuthorID) {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(p.Text, filter.Keyword) {
			continue
		}
		if !filter.PubDay.IsZero() {
			y1, m1, d1 := filter.PubDay.Date()
			y2, m2, d2 := p.PubDate.In(filter.PubDay.Location()).Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].PubDate.Equal(res[j].PubDate) {
			return res[i].PubDate.After(res[j].PubDate)
		}
		return res[i].ID > res[j].ID
	})
	return res
}

func (s *Store) hydratePost(p *model.Post) *model.Post {
	cp := *p
	if u, ok := s.users[p.AuthorID]; ok {
		cp.Author = *u
	}
	cp.Group = nil
	if p.GroupID != nil {
		if g, ok := s.groups[*p.GroupID]; ok {
			gc := *g
			cp.Group = &gc
		}
	}
	return &cp
}

// ---- comments ----

func (s *Store) CreateComment(_ context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment.ID = s.nextID()
	comment.Created = s.Now()
	cp := *comment
	cp.Author = model.User{}
	s.comments[comment.ID] = &cp
	return nil
}

func (s *Store) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.comments[id]; ok {
		return s.hydrateComment(c), nil
	}
	return nil, nil
}

func (s *Store) ListComments(_ context.Context, postID uint64) ([]*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := []*model.Comment{}
	for _, c := range s.sortedComments() {
		if c.PostID == postID {
			res = append(res, s.hydrateComment(c))
		}
	}
	return res, nil
}

func (s *Store) ListAllComments(_ context.Context, limit, offset int) ([]*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.sortedComments()
	if offset >= len(all) {
		return []*model.Comment{}, nil
	}
	end := min(len(all), offset+limit)
	res := make([]*model.Comment, 0, end-offset)
	for _, c := range all[offset:end] {
		res = append(res, s.hydrateComment(c))
	}
	return res, nil
}

func (s *Store) CountAllComments(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.comments)), nil
}

func (s *Store) DeleteComment(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.comments, id)
	return nil
}

func (s *Store) sortedComments() []*model.Comment {
	res := make([]*model.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].Created.Equal(res[j].Created) {
			return res[i].Created.After(res[j].Created)
		}
		return res[i].ID > res[j].ID
	})
	return res
}

func (s *Store) hydrateComment(c *model.Comment) *model.Comment {
	cp := *c
	if u, ok := s.users[c.AuthorID]; ok {
		cp.Author = *u
	}
	return &cp
}

// ---- follows ----

func (s *Store) GetFollow(_ context.Context, userID, authorID uint64) (*model.Follow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.follows {
		if f.UserID == userID && f.AuthorID == authorID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateFollow(_ context.Context, follow *model.Follow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isFollowing(follow.UserID, follow.AuthorID) {
		return nil
	}
	follow.ID = s.nextID()
	follow.CreatedAt = s.Now()
	cp := *follow
	cp.User, cp.Author = model.User{}, model.User{}
	s.follows[follow.ID] = &cp
	return nil
}

func (s *Store) DeleteFollow(_ context.Context, userID, authorID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, f := range s.follows {
		if f.UserID == userID && f.AuthorID == authorID {
			delete(s.follows, id)
		}
	}
	return nil
}

func (s *Store) GetFollowerCount(_ context.Context, authorID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, f := range s.follows {
		if f.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (s *Store) GetFollowingCount(_ context.Context, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, f := range s.follows {
		if f.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *Store) ListFollows(_ context.Context, limit, offset int) ([]*model.Follow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*model.Follow, 0, len(s.follows))
	for _, f := range s.follows {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return []*model.Follow{}, nil
	}
	end := min(len(all), offset+limit)
	res := make([]*model.Follow, 0, end-offset)
	for _, f := range all[offset:end] {
		cp := *f
		if u, ok := s.users[f.UserID]; ok {
			cp.User = *u
		}
		if u, ok := s.users[f.AuthorID]; ok {
			cp.Author = *u
		}
		res = append(res, &cp)
	}
	return res, nil
}

func (s *Store) CountFollows(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.follows)), nil
}

// FollowCount 测试断言用
func (s *Store) FollowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.follows)
}

func (s *Store) isFollowing(userID, authorID uint64) bool {
	for _, f := range s.follows {
		if f.UserID == userID && f.AuthorID == authorID {
			return true
		}
	}
	return false
}
