package db

import (
	"encoding/json"
	"time"

	"github.com/bloglist/internal/listhelper"
)

// Blog 定义了博客链接记录
type Blog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Author    string    `gorm:"not null" json:"author"`
	URL       string    `json:"url"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	UserID    uint      `gorm:"index" json:"-"`
	User      *User     `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BlogOwner 是博客响应中嵌入的作者视图，不包含其博客列表。
type BlogOwner struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// MarshalJSON renders the owner, when loaded, as a BlogOwner.
func (b Blog) MarshalJSON() ([]byte, error) {
	type plain Blog
	out := struct {
		plain
		User *BlogOwner `json:"user,omitempty"`
	}{plain: plain(b)}
	if b.User != nil {
		out.User = &BlogOwner{ID: b.User.ID, Username: b.User.Username, Name: b.User.Name}
	}
	return json.Marshal(out)
}

// Summary converts the record into the value used by the list statistics.
func (b Blog) Summary() listhelper.Blog {
	return listhelper.Blog{
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
}

// Summaries converts a slice of records in order.
func Summaries(blogs []Blog) []listhelper.Blog {
	out := make([]listhelper.Blog, 0, len(blogs))
	for _, blog := range blogs {
		out = append(out, blog.Summary())
	}
	return out
}
