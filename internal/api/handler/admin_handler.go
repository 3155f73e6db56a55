package handler

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/pkg/response"
	"Yatube/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminHandler 后台管理接口，统一返回 JSON
type AdminHandler struct {
	adminSvc service.AdminService
	groupSvc service.GroupService
}

func NewAdminHandler(adminSvc service.AdminService, groupSvc service.GroupService) *AdminHandler {
	return &AdminHandler{
		adminSvc: adminSvc,
		groupSvc: groupSvc,
	}
}

func (s *AdminHandler) ListPosts(c *gin.Context) {
	var query dto.AdminPostQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.adminSvc.ListPosts(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *AdminHandler) SetPostGroup(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.SetPostGroupDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.adminSvc.SetPostGroup(c.Request.Context(), postID, req.GroupID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) ListGroups(c *gin.Context) {
	groups, err := s.groupSvc.ListGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

func (s *AdminHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	group, err := s.groupSvc.CreateGroup(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *AdminHandler) ListFollows(c *gin.Context) {
	res, err := s.adminSvc.ListFollows(c.Request.Context(), c.Query("page"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *AdminHandler) ListComments(c *gin.Context) {
	res, err := s.adminSvc.ListComments(c.Request.Context(), c.Query("page"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *AdminHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.adminSvc.DeleteComment(c.Request.Context(), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCache 清空页面缓存
func (s *AdminHandler) ClearCache(c *gin.Context) {
	n, err := s.adminSvc.ClearPageCache(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": n})
}
