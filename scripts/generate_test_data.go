package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/bloglist/internal/config"
	"github.com/bloglist/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	seedUsername = "root"
	seedName     = "Superuser"
	seedPassword = "sekret"
)

var seedBlogs = []db.Blog{
	{Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll", Likes: 10},
	{Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

// 测试数据生成器
func main() {
	// 初始化数据库
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成测试数据...")

	user, err := createRootUser()
	if err != nil {
		log.Fatal("创建用户失败:", err)
	}

	created, err := createTestBlogs(user)
	if err != nil {
		log.Fatal("创建博客失败:", err)
	}

	fmt.Println("测试数据生成完成！")
	fmt.Printf("用户: %s (密码: %s)\n", seedUsername, seedPassword)
	fmt.Printf("博客: %d 篇\n", created)
}

// 创建 root 用户，已存在时直接复用
func createRootUser() (*db.User, error) {
	var user db.User
	err := db.DB.Where("username = ?", seedUsername).First(&user).Error
	if err == nil {
		fmt.Println("用户已存在，跳过创建")
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), db.PasswordCost)
	if err != nil {
		return nil, err
	}

	user = db.User{
		Username:     seedUsername,
		Name:         seedName,
		PasswordHash: string(hashedPassword),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	fmt.Println("✅ 测试用户创建完成")
	return &user, nil
}

// 创建测试博客；数据库中已有博客时跳过
func createTestBlogs(owner *db.User) (int, error) {
	var count int64
	if err := db.DB.Model(&db.Blog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		fmt.Println("博客已存在，跳过创建")
		return 0, nil
	}

	blogs := make([]db.Blog, len(seedBlogs))
	for i, blog := range seedBlogs {
		blog.UserID = owner.ID
		blogs[i] = blog
	}
	if err := db.DB.Create(&blogs).Error; err != nil {
		return 0, err
	}

	fmt.Println("✅ 测试博客创建完成")
	return len(blogs), nil
}
