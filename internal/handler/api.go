package handler

import (
	"log/slog"

	"github.com/bloglist/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	users  *service.UserService
	blogs  *service.BlogService
	stats  *service.StatsService
	tokens *service.TokenService
	log    *slog.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, tokens *service.TokenService, log *slog.Logger) *API {
	if log == nil {
		log = slog.Default()
	}

	return &API{
		users:  service.NewUserService(db),
		blogs:  service.NewBlogService(db),
		stats:  service.NewStatsService(db),
		tokens: tokens,
		log:    log,
	}
}
