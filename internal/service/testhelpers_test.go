package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/bloglist/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open(dsn, logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, username string) db.User {
	t.Helper()

	user := db.User{Username: username, Name: username, PasswordHash: "hashed"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedBlog(t *testing.T, gdb *gorm.DB, userID uint, title, author string, likes int) db.Blog {
	t.Helper()

	blog := db.Blog{Title: title, Author: author, URL: "https://example.com/" + title, Likes: likes, UserID: userID}
	if err := gdb.Create(&blog).Error; err != nil {
		t.Fatalf("seed blog %s: %v", title, err)
	}
	return blog
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
