package service

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/pkg/cache"
	"Yatube/internal/pkg/consts"
	"Yatube/internal/pkg/pagination"
	"Yatube/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
)

// AdminPerPage 后台列表每页条数
const AdminPerPage = 50

type AdminService interface {
	ListPosts(ctx context.Context, query *dto.AdminPostQuery) (*dto.AdminPage[*dto.AdminPostDTO], error)
	SetPostGroup(ctx context.Context, postID uint64, groupID *uint64) error
	ListFollows(ctx context.Context, rawPage string) (*dto.AdminPage[*dto.AdminFollowDTO], error)
	ListComments(ctx context.Context, rawPage string) (*dto.AdminPage[*dto.AdminCommentDTO], error)
	DeleteComment(ctx context.Context, commentID uint64) error
	ClearPageCache(ctx context.Context) (int, error)
}

type AdminServiceImpl struct {
	postRepo    repository.PostRepo
	groupRepo   repository.GroupRepo
	commentRepo repository.CommentRepo
	followRepo  repository.FollowRepo
	pages       cache.PageStore
}

func NewAdminService(
	postRepo repository.PostRepo,
	groupRepo repository.GroupRepo,
	commentRepo repository.CommentRepo,
	followRepo repository.FollowRepo,
	pages cache.PageStore,
) AdminService {
	return &AdminServiceImpl{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
		followRepo:  followRepo,
		pages:       pages,
	}
}

// ListPosts 支持按正文搜索与按发布日期筛选
func (s *AdminServiceImpl) ListPosts(ctx context.Context, query *dto.AdminPostQuery) (*dto.AdminPage[*dto.AdminPostDTO], error) {
	filter := repository.PostFilter{Keyword: strings.TrimSpace(query.Q)}
	if query.Date != "" {
		day, err := time.ParseInLocation(time.DateOnly, query.Date, time.Local)
		if err != nil {
			return nil, ErrParamInvalid
		}
		filter.PubDay = day
	}

	total, err := s.postRepo.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}
	number, offset := pagination.Resolve(query.Page, total, AdminPerPage)
	posts, err := s.postRepo.ListPosts(ctx, filter, AdminPerPage, offset)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminPostDTO, 0, len(posts))
	for _, post := range posts {
		item := &dto.AdminPostDTO{
			ID:      post.ID,
			Text:    post.Text,
			PubDate: post.PubDate,
			Author:  post.Author.Username,
			Group:   consts.AdminEmptyValue,
		}
		if post.Group != nil {
			item.Group = post.Group.Title
		}
		items = append(items, item)
	}

	return adminPage(items, number, total), nil
}

// SetPostGroup groupID 为 nil 时清空小组
func (s *AdminServiceImpl) SetPostGroup(ctx context.Context, postID uint64, groupID *uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if groupID != nil {
		group, err := s.groupRepo.GetGroup(ctx, *groupID)
		if err != nil {
			return err
		}
		if group == nil {
			return ErrGroupNotFound
		}
	}

	post.GroupID = groupID
	return s.postRepo.UpdatePost(ctx, post)
}

func (s *AdminServiceImpl) ListFollows(ctx context.Context, rawPage string) (*dto.AdminPage[*dto.AdminFollowDTO], error) {
	total, err := s.followRepo.CountFollows(ctx)
	if err != nil {
		return nil, err
	}
	number, offset := pagination.Resolve(rawPage, total, AdminPerPage)
	follows, err := s.followRepo.ListFollows(ctx, AdminPerPage, offset)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminFollowDTO, 0, len(follows))
	for _, f := range follows {
		items = append(items, &dto.AdminFollowDTO{
			ID:        f.ID,
			User:      f.User.Username,
			Author:    f.Author.Username,
			CreatedAt: f.CreatedAt,
		})
	}
	return adminPage(items, number, total), nil
}

func (s *AdminServiceImpl) ListComments(ctx context.Context, rawPage string) (*dto.AdminPage[*dto.AdminCommentDTO], error) {
	total, err := s.commentRepo.CountAllComments(ctx)
	if err != nil {
		return nil, err
	}
	number, offset := pagination.Resolve(rawPage, total, AdminPerPage)
	comments, err := s.commentRepo.ListAllComments(ctx, AdminPerPage, offset)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminCommentDTO, 0, len(comments))
	for _, c := range comments {
		items = append(items, &dto.AdminCommentDTO{
			ID:      c.ID,
			PostID:  c.PostID,
			Author:  c.Author.Username,
			Text:    c.Text,
			Created: c.Created,
		})
	}
	return adminPage(items, number, total), nil
}

func (s *AdminServiceImpl) DeleteComment(ctx context.Context, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrPostCommentNotFound
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}

// ClearPageCache 手动清空页面缓存
func (s *AdminServiceImpl) ClearPageCache(ctx context.Context) (int, error) {
	n, err := s.pages.Clear(ctx)
	if err != nil {
		return 0, err
	}
	log.InfoContext(ctx, "page cache cleared", "entries", n)
	return n, nil
}

func adminPage[T any](items []T, number int, total int64) *dto.AdminPage[T] {
	return &dto.AdminPage[T]{
		Items:    items,
		Page:     number,
		NumPages: pagination.NumPages(total, AdminPerPage),
		Total:    total,
	}
}
