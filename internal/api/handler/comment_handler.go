package handler

import (
	"Yatube/internal/pkg/consts"
	"Yatube/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// AddComment 只有带非空正文的 POST 会创建评论，无论结果都回到帖子详情
func (s *CommentHandler) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	var text string
	if c.Request.Method == http.MethodPost {
		text = c.PostForm("text")
	}

	userID := c.GetUint64(consts.UserIDKey)
	if _, err := s.commentSvc.AddComment(c.Request.Context(), userID, postID, text); err != nil {
		if !errors.Is(err, service.ErrCommentEmpty) {
			renderError(c, err)
			return
		}
	}

	c.Redirect(http.StatusFound, postURL(postID))
}
