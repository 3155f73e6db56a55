package service

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/model"
	"Yatube/internal/pkg/pagination"
	"Yatube/internal/repository"
	"context"
)

// FeedService 各类帖子列表页
type FeedService interface {
	Index(ctx context.Context, rawPage string) (*dto.PostPage, error)
	GroupPosts(ctx context.Context, slug, rawPage string) (*dto.GroupPostsDTO, error)
	Profile(ctx context.Context, viewer *dto.Viewer, username, rawPage string) (*dto.ProfileDTO, error)
	FollowFeed(ctx context.Context, userID uint64, rawPage string) (*dto.PostPage, error)
}

type FeedServiceImpl struct {
	userRepo   repository.UserRepo
	groupRepo  repository.GroupRepo
	postRepo   repository.PostRepo
	followRepo repository.FollowRepo
	perPage    int
}

func NewFeedService(
	userRepo repository.UserRepo,
	groupRepo repository.GroupRepo,
	postRepo repository.PostRepo,
	followRepo repository.FollowRepo,
	perPage int,
) FeedService {
	if perPage <= 0 {
		perPage = 10
	}
	return &FeedServiceImpl{
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
		perPage:    perPage,
	}
}

func (s *FeedServiceImpl) Index(ctx context.Context, rawPage string) (*dto.PostPage, error) {
	return s.paginate(ctx, repository.PostFilter{}, rawPage)
}

func (s *FeedServiceImpl) GroupPosts(ctx context.Context, slug, rawPage string) (*dto.GroupPostsDTO, error) {
	group, err := s.groupRepo.GetGroupBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	page, err := s.paginate(ctx, repository.PostFilter{GroupID: group.ID}, rawPage)
	if err != nil {
		return nil, err
	}
	return &dto.GroupPostsDTO{Group: group, Page: page}, nil
}

func (s *FeedServiceImpl) Profile(ctx context.Context, viewer *dto.Viewer, username, rawPage string) (*dto.ProfileDTO, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	page, err := s.paginate(ctx, repository.PostFilter{AuthorID: author.ID}, rawPage)
	if err != nil {
		return nil, err
	}

	res := &dto.ProfileDTO{
		Author:    author,
		Page:      page,
		PostCount: page.Total,
	}

	if viewer.IsAuthenticated() && viewer.ID != author.ID {
		follow, err := s.followRepo.GetFollow(ctx, viewer.ID, author.ID)
		if err != nil {
			return nil, err
		}
		res.Following = follow != nil
	}

	if res.FollowerCount, err = s.followRepo.GetFollowerCount(ctx, author.ID); err != nil {
		return nil, err
	}
	if res.FollowingCount, err = s.followRepo.GetFollowingCount(ctx, author.ID); err != nil {
		return nil, err
	}

	return res, nil
}

func (s *FeedServiceImpl) FollowFeed(ctx context.Context, userID uint64, rawPage string) (*dto.PostPage, error) {
	return s.paginate(ctx, repository.PostFilter{FollowerID: userID}, rawPage)
}

func (s *FeedServiceImpl) paginate(ctx context.Context, filter repository.PostFilter, rawPage string) (*dto.PostPage, error) {
	total, err := s.postRepo.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	number, offset := pagination.Resolve(rawPage, total, s.perPage)

	var posts []*model.Post
	if total > 0 {
		posts, err = s.postRepo.ListPosts(ctx, filter, s.perPage, offset)
		if err != nil {
			return nil, err
		}
	}

	return pagination.New(posts, number, s.perPage, total), nil
}
