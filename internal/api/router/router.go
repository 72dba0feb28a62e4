package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/yatube/config"
	_ "github.com/d60-Lab/yatube/docs"
	"github.com/d60-Lab/yatube/internal/api/handler"
	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/service"
)

// New 组装路由。路径模板与 nav 包的对照表保持一致。
func New(cfg *config.Config, h *handler.Handler, auth service.AuthService, users repository.UserRepository) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware("yatube"))
	}
	r.Use(middleware.Auth(auth, users))

	r.GET("/", h.Index)
	r.GET("/group/:slug", h.GroupList)
	r.GET("/profile/:username", h.Profile)
	r.GET("/posts/:post_id", h.PostDetail)

	authed := r.Group("/", middleware.RequireAuth())
	{
		authed.GET("/posts/create", h.PostCreateForm)
		authed.POST("/posts/create", h.PostCreate)
		authed.GET("/posts/:post_id/edit", h.PostEditForm)
		authed.POST("/posts/:post_id/edit", h.PostEdit)
		authed.GET("/follow", h.FollowIndex)
		authed.POST("/profile/:username/follow", h.Follow)
		authed.POST("/profile/:username/unfollow", h.Unfollow)
	}

	r.POST("/auth/signup", h.Signup)
	r.GET("/auth/login", h.LoginForm)
	r.POST("/auth/login", h.Login)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
