package service

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/model"
	"Yatube/internal/repository"
	"context"
	"errors"
	"strings"

	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
)

// MaxSlugLen 与表结构一致
const MaxSlugLen = 50

type GroupService interface {
	ListGroups(ctx context.Context) ([]*dto.GroupDTO, error)
	CreateGroup(ctx context.Context, groupDTO *dto.CreateGroupDTO) (*dto.GroupDTO, error)
}

type GroupServiceImpl struct {
	groupRepo repository.GroupRepo
}

func NewGroupService(groupRepo repository.GroupRepo) GroupService {
	return &GroupServiceImpl{groupRepo: groupRepo}
}

func (s *GroupServiceImpl) ListGroups(ctx context.Context) ([]*dto.GroupDTO, error) {
	groups, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.GroupDTO, 0, len(groups))
	if err = copier.Copy(&res, &groups); err != nil {
		return nil, err
	}
	return res, nil
}

// CreateGroup slug 为空时由标题转写生成
func (s *GroupServiceImpl) CreateGroup(ctx context.Context, groupDTO *dto.CreateGroupDTO) (*dto.GroupDTO, error) {
	groupSlug := strings.TrimSpace(groupDTO.Slug)
	if groupSlug == "" {
		groupSlug = slug.Make(groupDTO.Title)
	}
	if len(groupSlug) > MaxSlugLen {
		groupSlug = strings.Trim(groupSlug[:MaxSlugLen], "-")
	}
	if groupSlug == "" || !slug.IsSlug(groupSlug) {
		return nil, ErrParamInvalid
	}

	group := &model.Group{
		Title:       strings.TrimSpace(groupDTO.Title),
		Slug:        groupSlug,
		Description: groupDTO.Description,
	}
	if err := s.groupRepo.CreateGroup(ctx, group); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugExist
		}
		return nil, err
	}

	res := &dto.GroupDTO{}
	if err := copier.Copy(res, group); err != nil {
		return nil, err
	}
	return res, nil
}
