package model

import (
	"time"
)

type Comment struct {
	ID       uint64    `gorm:"primaryKey"`
	PostID   uint64    `gorm:"not null;index:idx_post_id"`
	AuthorID uint64    `gorm:"not null;index:idx_comment_author_id"`
	Text     string    `gorm:"type:text;not null"`
	Created  time.Time `gorm:"autoCreateTime"`

	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c Comment) String() string {
	return c.Text
}
