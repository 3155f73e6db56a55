package handler

import (
	"Yatube/internal/pkg/consts"
	"Yatube/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc}
}

func (s *FollowHandler) ProfileFollow(c *gin.Context) {
	username := c.Param("username")
	err := s.followSvc.Follow(c.Request.Context(), c.GetUint64(consts.UserIDKey), username)
	if err != nil && !errors.Is(err, service.ErrUserFollowSelf) {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(username))
}

func (s *FollowHandler) ProfileUnfollow(c *gin.Context) {
	username := c.Param("username")
	if err := s.followSvc.Unfollow(c.Request.Context(), c.GetUint64(consts.UserIDKey), username); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(username))
}
