package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloglist/internal/db"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("expected `username` to be unique")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

var registerMessages = map[string]string{
	"Username.required": "Username is required",
	"Username.min":      "Username must be at least 3 characters long",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least 3 characters long",
}

// ValidationError carries the first failed rule of a request as a readable message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RegisterInput represents the fields accepted when creating a user.
type RegisterInput struct {
	Username string `validate:"required,min=3"`
	Name     string
	Password string `validate:"required,min=3"`
}

// UserService wraps user related database operations.
type UserService struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb, validate: validator.New()}
}

// Register validates the input, hashes the password and stores a new user.
func (s *UserService) Register(input RegisterInput) (*db.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Name = sanitizeText(input.Name)

	if err := s.validateRegister(input); err != nil {
		return nil, err
	}

	var existing db.User
	err := s.db.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), db.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := db.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: string(hashed),
		Blogs:        []db.Blog{},
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &user, nil
}

func (s *UserService) validateRegister(input RegisterInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	first := fieldErrs[0]
	if message, ok := registerMessages[first.Field()+"."+first.Tag()]; ok {
		return &ValidationError{Message: message}
	}
	return &ValidationError{Message: first.Error()}
}

// List returns all users with their blogs.
func (s *UserService) List() ([]db.User, error) {
	var users []db.User
	if err := s.db.Preload("Blogs", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("blogs.id asc")
	}).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Blogs == nil {
			users[i].Blogs = []db.Blog{}
		}
	}
	return users, nil
}

// Find loads a user by id without preloading its blogs.
func (s *UserService) Find(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Get fetches a user by id with blogs preloaded.
func (s *UserService) Get(id uint) (*db.User, error) {
	var user db.User
	if err := s.db.Preload("Blogs", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("blogs.id asc")
	}).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Blogs == nil {
		user.Blogs = []db.Blog{}
	}
	return &user, nil
}

// Authenticate 校验用户名与密码，失败时统一返回 ErrInvalidCredentials。
func (s *UserService) Authenticate(username, password string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
