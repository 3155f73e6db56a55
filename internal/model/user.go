package model

import (
	"strings"
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(150);uniqueIndex:idx_username;not null"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	FirstName string `gorm:"type:varchar(150);not null;default:''"`
	LastName  string `gorm:"type:varchar(150);not null;default:''"`
	Email     string `gorm:"type:varchar(254);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// FullName 名字为空时回退到用户名
func (u User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}

func (u User) String() string {
	return u.Username
}
