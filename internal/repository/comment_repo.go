package repository

import (
	"Yatube/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	ListComments(ctx context.Context, postID uint64) ([]*model.Comment, error)
	ListAllComments(ctx context.Context, limit, offset int) ([]*model.Comment, error)
	CountAllComments(ctx context.Context) (int64, error)
	DeleteComment(ctx context.Context, id uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	err := s.db.WithContext(ctx).Omit("Author").Create(comment).Error
	return errors.Wrap(err, "create comment")
}

func (s *CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("Author").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get comment %d", id)
	}
	return &comment, nil
}

// ListComments 帖子下的评论，新的在前
func (s *CommentRepoImpl) ListComments(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created DESC").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list comments of post %d", postID)
	}
	return comments, nil
}

func (s *CommentRepoImpl) ListAllComments(ctx context.Context, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("Author").
		Order("created DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "list comments")
	}
	return comments, nil
}

func (s *CommentRepoImpl) CountAllComments(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count comments")
	}
	return count, nil
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	err := s.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
	return errors.Wrapf(err, "delete comment %d", id)
}
