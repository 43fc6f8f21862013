package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hijacksecurity/PravdaPlus/api-service/model"
)

const Version = "1.0.0"

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
	})
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "PravdaPlus API",
		"version": Version,
		"endpoints": []string{
			"/health",
			"/news",
			"/news/{category}",
			"/transform",
			"/metrics",
		},
	})
}
