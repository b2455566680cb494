package handler

import (
	"errors"
	"net/http"

	"github.com/bloglist/internal/service"
	"github.com/gin-gonic/gin"
)

// GetStats 返回全部博客的统计信息
func (a *API) GetStats(c *gin.Context) {
	stats, err := a.stats.Summary()
	if err != nil {
		a.internalError(c, "failed to compute stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetUserStats 返回指定用户名下博客的统计信息
func (a *API) GetUserStats(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "malformatted id")
		return
	}

	stats, err := a.stats.SummaryForUser(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		a.internalError(c, "failed to compute stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
