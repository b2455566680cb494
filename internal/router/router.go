package router

import (
	"log/slog"
	"net/http"

	"github.com/bloglist/internal/config"
	"github.com/bloglist/internal/handler"
	"github.com/bloglist/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionName = "bloglist_session"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, cfg config.AppConfig, log *slog.Logger) *gin.Engine {
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestLogger(log))

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	h := handler.NewAPI(gdb, tokens, log)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)

		api.GET("/users", h.GetUsers)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/stats", h.GetUserStats)

		api.GET("/blogs", h.GetBlogs)
		api.GET("/blogs/:id", h.GetBlog)
		api.GET("/stats", h.GetStats)

		// 需要认证的路由
		auth := api.Group("")
		auth.Use(h.UserExtractor())
		{
			auth.POST("/blogs", h.CreateBlog)
			auth.PUT("/blogs/:id", h.UpdateBlog)
			auth.DELETE("/blogs/:id", h.DeleteBlog)
		}
	}

	r.NoRoute(handler.UnknownEndpoint)

	return r
}
