package service

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/model"
	"Yatube/internal/pkg/security"
	"Yatube/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, form *dto.SignupFormDTO) (*dto.SessionDTO, error)
	Login(ctx context.Context, form *dto.LoginFormDTO) (*dto.SessionDTO, error)
	Logout(ctx context.Context, token string) error
}

type UserServiceImpl struct {
	userRepo   repository.UserRepo
	tokens     *security.TokenManager
	revocation security.Revocation
}

func NewUserService(userRepo repository.UserRepo, tokens *security.TokenManager, revocation security.Revocation) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		tokens:     tokens,
		revocation: revocation,
	}
}

// Register 注册后直接登录
func (s *UserServiceImpl) Register(ctx context.Context, form *dto.SignupFormDTO) (*dto.SessionDTO, error) {
	findUser, err := s.userRepo.GetUserByUsername(ctx, form.Username)
	if err != nil {
		return nil, err
	}
	if findUser != nil {
		return nil, ErrUserUsernameExist
	}

	user := &model.User{}
	if err = copier.Copy(user, form); err != nil {
		return nil, err
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	passwordHash, err := security.HashPassword(form.Password1)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 并发注册同名用户
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserUsernameExist
		}
		return nil, err
	}

	log.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return s.issue(user)
}

func (s *UserServiceImpl) Login(ctx context.Context, form *dto.LoginFormDTO) (*dto.SessionDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, form.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(form.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}
	return s.issue(user)
}

// Logout 吊销 Token，已失效的 Token 直接忽略
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.revocation.Revoke(ctx, token, claims.ExpiresAt.Time)
}

func (s *UserServiceImpl) issue(user *model.User) (*dto.SessionDTO, error) {
	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.SessionDTO{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Username:  user.Username,
	}, nil
}
