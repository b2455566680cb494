package listhelper

import "errors"

// ErrEmptyInput is returned by the selecting statistics when no blogs are given.
var ErrEmptyInput = errors.New("blog list is empty")

// Blog is the value record the statistics operate on.
type Blog struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// AuthorBlogs 表示发表文章最多的作者及其文章数。
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// Map returns the single-entry {author: blogs} mapping.
func (a AuthorBlogs) Map() map[string]int {
	return map[string]int{a.Author: a.Blogs}
}

// AuthorLikes 表示获赞总数最多的作者及其点赞数。
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// Map returns the single-entry {author: likes} mapping.
func (a AuthorLikes) Map() map[string]int {
	return map[string]int{a.Author: a.Likes}
}

// Dummy always returns 1.
func Dummy(_ []Blog) int {
	return 1
}

// TotalLikes sums the likes of every blog. An empty list yields 0.
func TotalLikes(blogs []Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. On ties the earliest blog wins.
func FavoriteBlog(blogs []Blog) (Blog, error) {
	if len(blogs) == 0 {
		return Blog{}, ErrEmptyInput
	}

	favorite := blogs[0]
	for _, blog := range blogs[1:] {
		if blog.Likes > favorite.Likes {
			favorite = blog
		}
	}
	return favorite, nil
}

// MostBlogs returns the author with the largest number of blogs.
// On ties the author whose first blog appears earliest wins.
func MostBlogs(blogs []Blog) (AuthorBlogs, error) {
	author, count, err := maxByAuthor(blogs, func(Blog) int { return 1 })
	if err != nil {
		return AuthorBlogs{}, err
	}
	return AuthorBlogs{Author: author, Blogs: count}, nil
}

// MostLikes returns the author whose blogs have received the most likes in total.
// On ties the author whose first blog appears earliest wins.
func MostLikes(blogs []Blog) (AuthorLikes, error) {
	author, likes, err := maxByAuthor(blogs, func(b Blog) int { return b.Likes })
	if err != nil {
		return AuthorLikes{}, err
	}
	return AuthorLikes{Author: author, Likes: likes}, nil
}

// maxByAuthor 按作者累加 weight，再按首次出现顺序选出累计值最大的作者。
func maxByAuthor(blogs []Blog, weight func(Blog) int) (string, int, error) {
	if len(blogs) == 0 {
		return "", 0, ErrEmptyInput
	}

	totals := make(map[string]int, len(blogs))
	order := make([]string, 0, len(blogs))
	for _, blog := range blogs {
		if _, seen := totals[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		totals[blog.Author] += weight(blog)
	}

	bestAuthor := order[0]
	bestValue := totals[bestAuthor]
	for _, author := range order[1:] {
		if totals[author] > bestValue {
			bestAuthor = author
			bestValue = totals[author]
		}
	}
	return bestAuthor, bestValue, nil
}
