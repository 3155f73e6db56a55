package model

import (
	"time"
)

// PostPreviewLen String() 截取的字符数
const PostPreviewLen = 15

type Post struct {
	ID       uint64    `gorm:"primaryKey"`
	Text     string    `gorm:"type:text;not null"`
	PubDate  time.Time `gorm:"autoCreateTime;index:idx_pub_date"`
	AuthorID uint64    `gorm:"not null;index:idx_author_id"`
	GroupID  *uint64   `gorm:"index:idx_group_id"`
	Image    string    `gorm:"type:varchar(255);not null;default:''"` // 对象存储 key，空串表示无图

	// 关联关系
	Author User   `gorm:"foreignKey:AuthorID;references:ID"`
	Group  *Group `gorm:"foreignKey:GroupID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

func (p Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > PostPreviewLen {
		return string(runes[:PostPreviewLen])
	}
	return p.Text
}

// HasImage 模板中判断是否渲染图片
func (p Post) HasImage() bool {
	return p.Image != ""
}
