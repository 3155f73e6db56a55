package dto

import (
	"Yatube/internal/model"
	"Yatube/internal/pkg/pagination"
)

// PostPage 帖子分页
type PostPage = pagination.Page[*model.Post]

// PostFormDTO 新建、编辑帖子表单
type PostFormDTO struct {
	Text  string `form:"text" validate:"required"`
	Group string `form:"group" validate:"omitempty,numeric"`
}

// ImageUpload 已读入内存的上传文件
type ImageUpload struct {
	Filename string
	Data     []byte
}

// CommentFormDTO 评论表单
type CommentFormDTO struct {
	Text string `form:"text" validate:"required"`
}

// GroupPostsDTO 小组页
type GroupPostsDTO struct {
	Group *model.Group
	Page  *PostPage
}

// ProfileDTO 作者主页
type ProfileDTO struct {
	Author         *model.User
	Page           *PostPage
	PostCount      int64
	Following      bool
	FollowerCount  int64
	FollowingCount int64
}

// PostDetailDTO 帖子详情，评论按时间倒序
type PostDetailDTO struct {
	Post      *model.Post
	PostCount int64
	Comments  []*model.Comment
}
