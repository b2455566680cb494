package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// internalError 记录错误详情并返回通用的 500 响应。
func (a *API) internalError(c *gin.Context, message string, err error) {
	a.log.Error(message,
		"error", err,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", c.GetString(requestIDKey))
	respondError(c, http.StatusInternalServerError, message)
}

// UnknownEndpoint answers every unmatched route.
func UnknownEndpoint(c *gin.Context) {
	respondError(c, http.StatusNotFound, "unknown endpoint")
}
