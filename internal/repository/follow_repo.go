package repository

import (
	"Yatube/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	GetFollow(ctx context.Context, userID, authorID uint64) (*model.Follow, error)
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, userID, authorID uint64) error
	GetFollowerCount(ctx context.Context, authorID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
	ListFollows(ctx context.Context, limit, offset int) ([]*model.Follow, error)
	CountFollows(ctx context.Context) (int64, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// GetFollow 获取关注关系，不存在时返回 nil, nil
func (s *FollowRepoImpl) GetFollow(ctx context.Context, userID, authorID uint64) (*model.Follow, error) {
	var follow model.Follow
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "get follow")
	}
	return &follow, nil
}

// CreateFollow 创建关注关系，重复关注时什么也不做
func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	err := s.db.WithContext(ctx).
		Omit("User", "Author").
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error
	return errors.Wrap(err, "create follow")
}

// DeleteFollow 删除关注关系
func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, userID, authorID uint64) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Follow{}).Error
	return errors.Wrap(err, "delete follow")
}

// GetFollowerCount 作者的粉丝数量
func (s *FollowRepoImpl) GetFollowerCount(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("author_id = ?", authorID).
		Count(&count)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "count followers")
	}
	return count, nil
}

// GetFollowingCount 用户关注的作者数量
func (s *FollowRepoImpl) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "count followings")
	}
	return count, nil
}

func (s *FollowRepoImpl) ListFollows(ctx context.Context, limit, offset int) ([]*model.Follow, error) {
	var follows []*model.Follow
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Author").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&follows)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "list follows")
	}
	return follows, nil
}

func (s *FollowRepoImpl) CountFollows(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Follow{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count follows")
	}
	return count, nil
}
