package handler

import (
	"errors"
	"net/http"

	"github.com/bloglist/internal/service"
	"github.com/gin-gonic/gin"
)

type blogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

func (r blogRequest) input() service.BlogInput {
	return service.BlogInput{
		Title:  r.Title,
		Author: r.Author,
		URL:    r.URL,
		Likes:  r.Likes,
	}
}

// GetBlogs 获取博客列表
func (a *API) GetBlogs(c *gin.Context) {
	blogs, err := a.blogs.List()
	if err != nil {
		a.internalError(c, "failed to list blogs", err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GetBlog 获取单篇博客
func (a *API) GetBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "malformatted id")
		return
	}

	blog, err := a.blogs.Get(id)
	if err != nil {
		a.respondBlogError(c, "failed to load blog", err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// CreateBlog 以当前用户身份创建博客
func (a *API) CreateBlog(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "token missing")
		return
	}

	var req blogRequest
	if !bindJSON(c, &req, "invalid blog payload") {
		return
	}

	blog, err := a.blogs.Create(user.ID, req.input())
	if err != nil {
		a.respondBlogError(c, "failed to create blog", err)
		return
	}

	c.JSON(http.StatusCreated, blog)
}

// UpdateBlog 更新博客，未提供的字段保持不变
func (a *API) UpdateBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "malformatted id")
		return
	}

	var req blogRequest
	if !bindJSON(c, &req, "invalid blog payload") {
		return
	}

	blog, err := a.blogs.Update(id, req.input())
	if err != nil {
		a.respondBlogError(c, "failed to update blog", err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// DeleteBlog 删除当前用户拥有的博客
func (a *API) DeleteBlog(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "token missing")
		return
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "malformatted id")
		return
	}

	if err := a.blogs.Delete(user.ID, id); err != nil {
		a.respondBlogError(c, "failed to delete blog", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *API) respondBlogError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrBlogNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotBlogOwner):
		respondError(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusUnauthorized, "user not found")
	case errors.Is(err, service.ErrBlogFieldsRequired), errors.Is(err, service.ErrNegativeLikes),
		errors.Is(err, service.ErrMarkupNotAllowed), errors.Is(err, service.ErrInvalidURL):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		a.internalError(c, message, err)
	}
}
