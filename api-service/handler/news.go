package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hijacksecurity/PravdaPlus/api-service/config"
	"github.com/hijacksecurity/PravdaPlus/api-service/fetcher"
)

type NewsHandler struct {
	cfg     *config.Config
	fetcher *fetcher.Fetcher
}

func NewNewsHandler(cfg *config.Config, f *fetcher.Fetcher) *NewsHandler {
	return &NewsHandler{cfg: cfg, fetcher: f}
}

// GetCategory serves GET /news/:category. Unknown categories are a 404; a
// reachable category always answers 200, possibly with an empty list.
func (h *NewsHandler) GetCategory(c *gin.Context) {
	category := c.Param("category")
	limit := limitQuery(c, 10)

	feedURL, ok := h.cfg.Feeds[category]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Category '%s' not found", category)})
		return
	}

	items := h.fetcher.Fetch(c.Request.Context(), category, feedURL, limit)
	c.JSON(http.StatusOK, items)
}

// GetAll serves GET /news, fetching every configured feed concurrently.
func (h *NewsHandler) GetAll(c *gin.Context) {
	limit := limitQuery(c, 5)
	c.JSON(http.StatusOK, h.fetcher.FetchAll(c.Request.Context(), h.cfg.Feeds, limit))
}

func limitQuery(c *gin.Context, defaultLimit int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		return defaultLimit
	}
	return limit
}
