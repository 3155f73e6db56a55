package service

import (
	"Yatube/internal/model"
	"Yatube/internal/repository"
	"context"
	"strings"
)

type CommentService interface {
	AddComment(ctx context.Context, userID, postID uint64, text string) (*model.Comment, error)
}

type CommentServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
}

func NewCommentService(postRepo repository.PostRepo, commentRepo repository.CommentRepo) CommentService {
	return &CommentServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// AddComment 帖子不存在返回 ErrPostNotFound，空内容返回 ErrCommentEmpty
func (s *CommentServiceImpl) AddComment(ctx context.Context, userID, postID uint64, text string) (*model.Comment, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCommentEmpty
	}

	comment := &model.Comment{
		PostID:   post.ID,
		AuthorID: userID,
		Text:     text,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
