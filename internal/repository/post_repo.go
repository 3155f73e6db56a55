package repository

import (
	"Yatube/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostFilter 列表筛选条件，零值表示不限
type PostFilter struct {
	GroupID    uint64
	AuthorID   uint64
	FollowerID uint64 // 只看该用户关注的作者
	Keyword    string
	PubDay     time.Time // 只看这一天发布的
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	ListPosts(ctx context.Context, filter PostFilter, limit, offset int) ([]*model.Post, error)
	CountPosts(ctx context.Context, filter PostFilter) (int64, error)
	ListImageKeys(ctx context.Context) ([]string, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	err := s.db.WithContext(ctx).Omit("Author", "Group").Create(post).Error
	return errors.Wrap(err, "create post")
}

// GetPost 不存在时返回 nil, nil
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get post %d", id)
	}
	return &post, nil
}

// UpdatePost 只更新表单可编辑的列
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	err := s.db.WithContext(ctx).
		Model(&model.Post{ID: post.ID}).
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
	return errors.Wrapf(err, "update post %d", post.ID)
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, filter PostFilter, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.scope(ctx, filter).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPosts(ctx context.Context, filter PostFilter) (int64, error) {
	var count int64
	err := s.scope(ctx, filter).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count posts")
	}
	return count, nil
}

// ListImageKeys 所有被帖子引用的图片 key
func (s *PostRepoImpl) ListImageKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("image <> ?", "").
		Pluck("image", &keys).Error
	if err != nil {
		return nil, errors.Wrap(err, "list image keys")
	}
	return keys, nil
}

func (s *PostRepoImpl) scope(ctx context.Context, filter PostFilter) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&model.Post{})
	if filter.GroupID != 0 {
		tx = tx.Where("group_id = ?", filter.GroupID)
	}
	if filter.AuthorID != 0 {
		tx = tx.Where("author_id = ?", filter.AuthorID)
	}
	if filter.FollowerID != 0 {
		tx = tx.Where("author_id IN (?)",
			s.db.Model(&model.Follow{}).Select("author_id").Where("user_id = ?", filter.FollowerID))
	}
	if filter.Keyword != "" {
		tx = tx.Where("text LIKE ?", "%"+escapeLike(filter.Keyword)+"%")
	}
	if !filter.PubDay.IsZero() {
		start := time.Date(filter.PubDay.Year(), filter.PubDay.Month(), filter.PubDay.Day(), 0, 0, 0, 0, filter.PubDay.Location())
		tx = tx.Where("pub_date >= ? AND pub_date < ?", start, start.AddDate(0, 0, 1))
	}
	return tx
}
