package service

import (
	"Yatube/internal/model"
	"Yatube/internal/repository"
	"context"
)

type FollowService interface {
	Follow(ctx context.Context, userID uint64, username string) error
	Unfollow(ctx context.Context, userID uint64, username string) error
}

type FollowServiceImpl struct {
	userRepo   repository.UserRepo
	followRepo repository.FollowRepo
}

func NewFollowService(userRepo repository.UserRepo, followRepo repository.FollowRepo) FollowService {
	return &FollowServiceImpl{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// Follow 关注自己返回 ErrUserFollowSelf，重复关注不报错
func (s *FollowServiceImpl) Follow(ctx context.Context, userID uint64, username string) error {
	author, err := s.findAuthor(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return ErrUserFollowSelf
	}

	existing, err := s.followRepo.GetFollow(ctx, userID, author.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return s.followRepo.CreateFollow(ctx, &model.Follow{
		UserID:   userID,
		AuthorID: author.ID,
	})
}

func (s *FollowServiceImpl) Unfollow(ctx context.Context, userID uint64, username string) error {
	author, err := s.findAuthor(ctx, username)
	if err != nil {
		return err
	}
	return s.followRepo.DeleteFollow(ctx, userID, author.ID)
}

func (s *FollowServiceImpl) findAuthor(ctx context.Context, username string) (*model.User, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	return author, nil
}
