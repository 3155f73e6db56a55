package service

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/model"
	"Yatube/internal/pkg/util"
	"Yatube/internal/repository"
	"context"
	log "log/slog"
	"strings"
)

type PostService interface {
	GetPostDetail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error)
	GetPostForEdit(ctx context.Context, userID, postID uint64) (*model.Post, error)
	CreatePost(ctx context.Context, userID uint64, form *dto.PostFormDTO, image *dto.ImageUpload) (*model.Post, error)
	UpdatePost(ctx context.Context, userID, postID uint64, form *dto.PostFormDTO, image *dto.ImageUpload) (*model.Post, error)
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	groupRepo    repository.GroupRepo
	commentRepo  repository.CommentRepo
	imageService ImageService
}

func NewPostService(
	postRepo repository.PostRepo,
	groupRepo repository.GroupRepo,
	commentRepo repository.CommentRepo,
	imageService ImageService,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		groupRepo:    groupRepo,
		commentRepo:  commentRepo,
		imageService: imageService,
	}
}

// GetPostDetail 帖子详情，附带作者发帖数与评论
func (s *postServiceImpl) GetPostDetail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	count, err := s.postRepo.CountPosts(ctx, repository.PostFilter{AuthorID: post.AuthorID})
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListComments(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return &dto.PostDetailDTO{
		Post:      post,
		PostCount: count,
		Comments:  comments,
	}, nil
}

// GetPostForEdit 非作者返回 ErrPostNotAuthor
func (s *postServiceImpl) GetPostForEdit(ctx context.Context, userID, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrPostNotAuthor
	}
	return post, nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, form *dto.PostFormDTO, image *dto.ImageUpload) (*model.Post, error) {
	text := strings.TrimSpace(form.Text)
	if text == "" {
		return nil, ErrPostTextEmpty
	}

	groupID, err := s.resolveGroup(ctx, form.Group)
	if err != nil {
		return nil, err
	}

	key, err := s.imageService.SavePostImage(ctx, image)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Text:     text,
		AuthorID: userID,
		GroupID:  groupID,
		Image:    key,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "post created", "post_id", post.ID, "author_id", userID)
	return post, nil
}

// UpdatePost 只有作者可以编辑；未上传新图时保留原图
func (s *postServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, form *dto.PostFormDTO, image *dto.ImageUpload) (*model.Post, error) {
	post, err := s.GetPostForEdit(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(form.Text)
	if text == "" {
		return nil, ErrPostTextEmpty
	}

	groupID, err := s.resolveGroup(ctx, form.Group)
	if err != nil {
		return nil, err
	}

	key, err := s.imageService.SavePostImage(ctx, image)
	if err != nil {
		return nil, err
	}
	if key != "" {
		post.Image = key
	}

	post.Text = text
	post.GroupID = groupID
	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// resolveGroup 空串表示不选小组
func (s *postServiceImpl) resolveGroup(ctx context.Context, raw string) (*uint64, error) {
	id, err := util.ParseOptionalID(raw)
	if err != nil {
		return nil, ErrGroupNotFound
	}
	if id == nil {
		return nil, nil
	}

	group, err := s.groupRepo.GetGroup(ctx, *id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return &group.ID, nil
}
