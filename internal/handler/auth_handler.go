package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bloglist/internal/db"
	"github.com/bloglist/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	currentUserKey   = "current_user"
	currentUserIDKey = "current_user_id"
	sessionUserIDKey = "user_id"
	sessionNameKey   = "username"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 校验用户名密码，签发 JWT 并写入会话。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "invalid login payload") {
		return
	}

	user, err := a.users.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, err.Error())
			return
		}
		a.internalError(c, "login failed", err)
		return
	}

	token, err := a.tokens.Issue(user)
	if err != nil {
		a.internalError(c, "failed to issue token", err)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionNameKey, user.Username)
	if err := session.Save(); err != nil {
		a.internalError(c, "failed to save session", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
		"name":     user.Name,
	})
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		a.internalError(c, "failed to clear session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UserExtractor resolves the calling user from a bearer token, or from the
// login session when no Authorization header is sent, and aborts with 401
// otherwise.
func (a *API) UserExtractor() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, message := a.requestUserID(c)
		if userID == 0 {
			respondError(c, http.StatusUnauthorized, message)
			c.Abort()
			return
		}

		user, err := a.users.Find(userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				respondError(c, http.StatusUnauthorized, "user not found")
				c.Abort()
				return
			}
			a.internalError(c, "failed to load user", err)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Set(currentUserIDKey, user.ID)
		c.Next()
	}
}

func (a *API) requestUserID(c *gin.Context) (uint, string) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			return 0, "token missing"
		}

		claims, err := a.tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return 0, "token expired"
			}
			return 0, "token invalid"
		}
		return claims.UserID, ""
	}

	if id, ok := sessions.Default(c).Get(sessionUserIDKey).(uint); ok && id != 0 {
		return id, ""
	}
	return 0, "token missing"
}

func currentUser(c *gin.Context) *db.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*db.User)
	return user
}
