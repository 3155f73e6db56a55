package dto

import "time"

// SignupFormDTO 注册表单
type SignupFormDTO struct {
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`
	Username  string `form:"username" validate:"required,min=3,max=150,username"`
	Email     string `form:"email" validate:"omitempty,email,max=254"`
	Password1 string `form:"password1" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// LoginFormDTO 登录表单
type LoginFormDTO struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// SessionDTO 登录成功后签发的会话
type SessionDTO struct {
	Token     string
	ExpiresAt time.Time
	UserID    uint64
	Username  string
}
