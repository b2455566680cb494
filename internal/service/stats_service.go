package service

import (
	"errors"

	"github.com/bloglist/internal/db"
	"github.com/bloglist/internal/listhelper"
	"gorm.io/gorm"
)

// BlogStats 汇总一组博客的统计结果；列表为空时除 TotalLikes 外均为 nil。
type BlogStats struct {
	Count        int                     `json:"count"`
	TotalLikes   int                     `json:"totalLikes"`
	FavoriteBlog *listhelper.Blog        `json:"favoriteBlog"`
	MostBlogs    *listhelper.AuthorBlogs `json:"mostBlogs"`
	MostLikes    *listhelper.AuthorLikes `json:"mostLikes"`
}

// Summarize runs every list statistic over blogs.
func Summarize(blogs []listhelper.Blog) (BlogStats, error) {
	stats := BlogStats{Count: len(blogs), TotalLikes: listhelper.TotalLikes(blogs)}

	favorite, err := listhelper.FavoriteBlog(blogs)
	if errors.Is(err, listhelper.ErrEmptyInput) {
		return stats, nil
	}
	if err != nil {
		return BlogStats{}, err
	}
	stats.FavoriteBlog = &favorite

	mostBlogs, err := listhelper.MostBlogs(blogs)
	if err != nil {
		return BlogStats{}, err
	}
	stats.MostBlogs = &mostBlogs

	mostLikes, err := listhelper.MostLikes(blogs)
	if err != nil {
		return BlogStats{}, err
	}
	stats.MostLikes = &mostLikes

	return stats, nil
}

// StatsService computes list statistics over stored blogs.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a StatsService instance.
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb}
}

// Summary returns statistics over every stored blog.
func (s *StatsService) Summary() (BlogStats, error) {
	var blogs []db.Blog
	if err := s.db.Order("id asc").Find(&blogs).Error; err != nil {
		return BlogStats{}, err
	}
	return Summarize(db.Summaries(blogs))
}

// SummaryForUser returns statistics over the blogs owned by userID.
func (s *StatsService) SummaryForUser(userID uint) (BlogStats, error) {
	var user db.User
	if err := s.db.Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BlogStats{}, ErrUserNotFound
		}
		return BlogStats{}, err
	}

	var blogs []db.Blog
	if err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&blogs).Error; err != nil {
		return BlogStats{}, err
	}
	return Summarize(db.Summaries(blogs))
}
