package repository

import (
	"Yatube/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GroupRepo interface {
	CreateGroup(ctx context.Context, group *model.Group) error
	GetGroup(ctx context.Context, id uint64) (*model.Group, error)
	GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error)
	ListGroups(ctx context.Context) ([]*model.Group, error)
}

type GroupRepoImpl struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &GroupRepoImpl{db: db}
}

// CreateGroup slug 冲突时返回 ErrDuplicate
func (s *GroupRepoImpl) CreateGroup(ctx context.Context, group *model.Group) error {
	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return translateDuplicate(errors.Wrap(err, "create group"))
	}
	return nil
}

func (s *GroupRepoImpl) GetGroup(ctx context.Context, id uint64) (*model.Group, error) {
	var group model.Group
	err := s.db.WithContext(ctx).First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get group %d", id)
	}
	return &group, nil
}

func (s *GroupRepoImpl) GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get group %q", slug)
	}
	return &group, nil
}

func (s *GroupRepoImpl) ListGroups(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	if err := s.db.WithContext(ctx).Order("title").Find(&groups).Error; err != nil {
		return nil, errors.Wrap(err, "list groups")
	}
	return groups, nil
}
