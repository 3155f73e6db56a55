package api

import (
	"Yatube/internal/api/handler"
	"Yatube/internal/api/middleware"
	"Yatube/internal/pkg/logger"
	"Yatube/internal/pkg/metrics"
	"Yatube/internal/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

var formMethods = []string{http.MethodGet, http.MethodPost}

func SetupRouter(group *HandlersGroup, opts *RouterOptions) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(opts.TrustedProxies)
	r.HTMLRender = opts.Renderer

	// TraceId & Metrics & Logger & Session & Audit
	r.Use(middleware.TraceMiddleware())
	r.Use(metrics.GinMiddleware())
	logger.SetupGin(r)
	r.Use(opts.Session)
	r.Use(middleware.AuditMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, "pong")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 公开页面
	r.GET("/", opts.IndexCache, group.PostHandler.Index)
	r.GET("/group/:slug/", group.PostHandler.GroupPosts)
	r.GET("/profile/:username/", group.PostHandler.Profile)
	r.GET("/posts/:post_id/", group.PostHandler.PostDetail)

	// 需要登录，游客跳转到登录页
	authGroup := r.Group("")
	authGroup.Use(middleware.LoginRequired(opts.LoginURL))
	{
		authGroup.Match(formMethods, "/create/", group.PostHandler.CreatePost)
		authGroup.Match(formMethods, "/posts/:post_id/edit/", group.PostHandler.EditPost)
		authGroup.Match(formMethods, "/posts/:post_id/comment/", group.CommentHandler.AddComment)
		authGroup.GET("/follow/", group.PostHandler.FollowIndex)
		authGroup.GET("/profile/:username/follow/", group.FollowHandler.ProfileFollow)
		authGroup.GET("/profile/:username/unfollow/", group.FollowHandler.ProfileUnfollow)
	}

	accountGroup := r.Group("/auth")
	accountGroup.Use(opts.AuthLimiter)
	{
		accountGroup.Match(formMethods, "/signup/", group.UserHandler.Signup)
		accountGroup.Match(formMethods, "/login/", group.UserHandler.Login)
		accountGroup.Match(formMethods, "/logout/", group.UserHandler.Logout)
	}

	// 后台管理，仅管理员
	adminGroup := r.Group("/admin/api")
	adminGroup.Use(middleware.CORSMiddleware(), middleware.StaffRequired())
	{
		adminGroup.GET("/posts", group.AdminHandler.ListPosts)
		adminGroup.PUT("/posts/:post_id/group", group.AdminHandler.SetPostGroup)
		adminGroup.GET("/groups", group.AdminHandler.ListGroups)
		adminGroup.POST("/groups", group.AdminHandler.CreateGroup)
		adminGroup.GET("/follows", group.AdminHandler.ListFollows)
		adminGroup.GET("/comments", group.AdminHandler.ListComments)
		adminGroup.DELETE("/comments/:comment_id", group.AdminHandler.DeleteComment)
		adminGroup.POST("/cache/clear", group.AdminHandler.ClearCache)
		// 预检请求由 CORSMiddleware 直接返回
		adminGroup.OPTIONS("/*path", func(c *gin.Context) {})
	}

	r.NoRoute(handler.NotFound)

	return r
}
