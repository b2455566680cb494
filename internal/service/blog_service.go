package service

import (
	"errors"
	"strings"

	"github.com/bloglist/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound       = errors.New("blog not found")
	ErrNotBlogOwner       = errors.New("blog belongs to another user")
	ErrBlogFieldsRequired = errors.New("title and author are required")
	ErrNegativeLikes      = errors.New("likes must not be negative")
	ErrMarkupNotAllowed   = errors.New("title and author must be plain text")
	ErrInvalidURL         = errors.New("url must be a valid absolute URL")
)

// BlogInput represents fields accepted when creating or updating a blog.
// Nil fields are left untouched on update.
type BlogInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

// BlogService wraps blog related database operations.
type BlogService struct {
	db *gorm.DB
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// List returns all blogs in insertion order with their owners.
func (s *BlogService) List() ([]db.Blog, error) {
	var blogs []db.Blog
	if err := s.db.Preload("User").Order("id asc").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// ListByUser returns the blogs owned by userID in insertion order.
func (s *BlogService) ListByUser(userID uint) ([]db.Blog, error) {
	var blogs []db.Blog
	if err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// Get fetches a blog by id with its owner preloaded.
func (s *BlogService) Get(id uint) (*db.Blog, error) {
	var blog db.Blog
	if err := s.db.Preload("User").First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// Create stores a blog owned by userID. Missing likes default to zero.
func (s *BlogService) Create(userID uint, input BlogInput) (*db.Blog, error) {
	blog := db.Blog{UserID: userID}
	if err := applyBlogInput(&blog, input); err != nil {
		return nil, err
	}
	if blog.Title == "" || blog.Author == "" {
		return nil, ErrBlogFieldsRequired
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		var owner db.User
		if err := tx.Select("id").First(&owner, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return tx.Create(&blog).Error
	}); err != nil {
		return nil, err
	}

	return s.Get(blog.ID)
}

// Update applies the provided fields to an existing blog.
func (s *BlogService) Update(id uint, input BlogInput) (*db.Blog, error) {
	var existing db.Blog
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if err := applyBlogInput(&existing, input); err != nil {
		return nil, err
	}
	if existing.Title == "" || existing.Author == "" {
		return nil, ErrBlogFieldsRequired
	}

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes a blog when userID owns it.
func (s *BlogService) Delete(userID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var blog db.Blog
		if err := tx.First(&blog, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBlogNotFound
			}
			return err
		}

		if blog.UserID != userID {
			return ErrNotBlogOwner
		}

		return tx.Delete(&db.Blog{}, id).Error
	})
}

func applyBlogInput(blog *db.Blog, input BlogInput) error {
	if input.Title != nil {
		title, ok := plainText(*input.Title)
		if !ok {
			return ErrMarkupNotAllowed
		}
		blog.Title = title
	}
	if input.Author != nil {
		author, ok := plainText(*input.Author)
		if !ok {
			return ErrMarkupNotAllowed
		}
		blog.Author = author
	}
	if input.URL != nil {
		url := strings.TrimSpace(*input.URL)
		if !validURL(url) {
			return ErrInvalidURL
		}
		blog.URL = url
	}
	if input.Likes != nil {
		if *input.Likes < 0 {
			return ErrNegativeLikes
		}
		blog.Likes = *input.Likes
	}
	return nil
}
