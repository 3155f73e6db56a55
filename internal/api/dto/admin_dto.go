package dto

import "time"

// AdminPostQuery 后台帖子列表的搜索与筛选
type AdminPostQuery struct {
	Q    string `form:"q"`
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Page string `form:"page"`
}

// AdminPage 后台分页结果
type AdminPage[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	NumPages int   `json:"num_pages"`
	Total    int64 `json:"total"`
}

type AdminPostDTO struct {
	ID      uint64    `json:"pk"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Author  string    `json:"author"`
	Group   string    `json:"group"`
}

// SetPostGroupDTO group_id 为 null 时清空小组
type SetPostGroupDTO struct {
	GroupID *uint64 `json:"group_id"`
}

type GroupDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CreateGroupDTO slug 为空时由 title 生成
type CreateGroupDTO struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"omitempty,max=50"`
	Description string `json:"description"`
}

type AdminFollowDTO struct {
	ID        uint64    `json:"id"`
	User      string    `json:"user"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminCommentDTO struct {
	ID      uint64    `json:"id"`
	PostID  uint64    `json:"post_id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}
