package handler

import (
	"errors"
	"net/http"

	"github.com/bloglist/internal/service"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateUser 注册新用户
func (a *API) CreateUser(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req, "invalid user payload") {
		return
	}

	user, err := a.users.Register(service.RegisterInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			respondError(c, http.StatusUnprocessableEntity, verr.Message)
		case errors.Is(err, service.ErrUsernameTaken):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			a.internalError(c, "failed to create user", err)
		}
		return
	}

	a.log.Info("user registered", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, user)
}

// GetUsers 获取用户列表
func (a *API) GetUsers(c *gin.Context) {
	users, err := a.users.List()
	if err != nil {
		a.internalError(c, "failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser 获取单个用户
func (a *API) GetUser(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "malformatted id")
		return
	}

	user, err := a.users.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		a.internalError(c, "failed to load user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
