package api

import (
	"Yatube/internal/api/handler"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	FollowHandler  *handler.FollowHandler
	UserHandler    *handler.UserHandler
	AdminHandler   *handler.AdminHandler
}

// RouterOptions 路由层需要的模板与中间件
type RouterOptions struct {
	Renderer       render.HTMLRender
	Session        gin.HandlerFunc
	IndexCache     gin.HandlerFunc
	AuthLimiter    gin.HandlerFunc
	LoginURL       string
	TrustedProxies []string
}
