package wire

import (
	"Yatube/internal/api"
	"Yatube/internal/api/config"
	"Yatube/internal/api/handler"
	"Yatube/internal/api/middleware"
	"Yatube/internal/job"
	"Yatube/internal/pkg/cache"
	"Yatube/internal/pkg/cron"
	"Yatube/internal/pkg/security"
	"Yatube/internal/pkg/storage"
	"Yatube/internal/repository"
	"Yatube/internal/service"
	"Yatube/internal/web"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
	Pages   cache.PageStore
}

// Repositories 数据访问层
type Repositories struct {
	Users    repository.UserRepo
	Groups   repository.GroupRepo
	Posts    repository.PostRepo
	Comments repository.CommentRepo
	Follows  repository.FollowRepo
}

// Infra 外部依赖：对象存储、页面缓存、Token 吊销
type Infra struct {
	Store      storage.ObjectStore
	Pages      cache.PageStore
	Revocation security.Revocation
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    repository.NewUserRepo(db),
		Groups:   repository.NewGroupRepo(db),
		Posts:    repository.NewPostRepository(db),
		Comments: repository.NewCommentRepo(db),
		Follows:  repository.NewFollowRepo(db),
	}
}

// NewPageStore cache_backend 为 redis 时使用 Redis，否则使用进程内缓存
func NewPageStore(cfg config.BlogConfig) cache.PageStore {
	if cfg.CacheBackend == "redis" {
		return cache.NewRedisPageStore()
	}
	return cache.NewMemoryPageStore()
}

func BuildApplication(db *gorm.DB, store storage.ObjectStore, cfg *config.Config) (*ApplicationContainer, error) {
	infra := &Infra{
		Store:      store,
		Pages:      NewPageStore(cfg.Blog),
		Revocation: security.NewRedisRevocation(),
	}
	return Build(NewRepositories(db), infra, cfg)
}

func Build(repos *Repositories, infra *Infra, cfg *config.Config) (*ApplicationContainer, error) {
	tokens := security.NewTokenManager(cfg.Security.JWTSecret, time.Duration(cfg.Security.TokenTTLHours)*time.Hour)

	imageService := service.NewImageService(infra.Store, cfg.Blog.MaxImageBytes())
	feedService := service.NewFeedService(repos.Users, repos.Groups, repos.Posts, repos.Follows, cfg.Blog.PostsPerPage)
	postService := service.NewPostService(repos.Posts, repos.Groups, repos.Comments, imageService)
	commentService := service.NewCommentService(repos.Posts, repos.Comments)
	followService := service.NewFollowService(repos.Users, repos.Follows)
	groupService := service.NewGroupService(repos.Groups)
	userService := service.NewUserService(repos.Users, tokens, infra.Revocation)
	adminService := service.NewAdminService(repos.Posts, repos.Groups, repos.Comments, repos.Follows, infra.Pages)

	handlers := &api.HandlersGroup{
		PostHandler:    handler.NewPostHandler(feedService, postService, groupService, cfg.Blog.MaxImageBytes()),
		CommentHandler: handler.NewCommentHandler(commentService),
		FollowHandler:  handler.NewFollowHandler(followService),
		UserHandler:    handler.NewUserHandler(userService, cfg.Security.CookieName, cfg.Security.CookieSecure),
		AdminHandler:   handler.NewAdminHandler(adminService, groupService),
	}

	renderer, err := web.NewRenderer(infra.Store)
	if err != nil {
		return nil, err
	}

	router := api.SetupRouter(handlers, &api.RouterOptions{
		Renderer:       renderer,
		Session:        middleware.SessionMiddleware(tokens, infra.Revocation, cfg.Security.CookieName, cfg.Blog.AdminUsernames),
		IndexCache:     middleware.CachePage(infra.Pages, time.Duration(cfg.Blog.CacheSeconds)*time.Second),
		AuthLimiter:    middleware.NewIPRateLimiter(cfg.Security.AuthRatePerMinute).Middleware(),
		LoginURL:       cfg.Blog.LoginURL,
		TrustedProxies: cfg.Server.TrustedProxies,
	})

	mediaCleanupJob := job.NewMediaCleanupJob(repos.Posts, infra.Store, time.Duration(cfg.Cron.MediaGraceHours)*time.Hour)
	cronMgr := cron.NewCronManager(cfg.Cron, mediaCleanupJob)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
		Pages:   infra.Pages,
	}, nil
}
