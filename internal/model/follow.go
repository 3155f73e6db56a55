package model

import "time"

// Follow UserID 关注了 AuthorID
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uniq_user_author"`
	AuthorID  uint64 `gorm:"not null;uniqueIndex:uniq_user_author;index:idx_follow_author_id"`
	CreatedAt time.Time

	User   User `gorm:"foreignKey:UserID;references:ID"`
	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Follow) TableName() string {
	return "follows"
}
