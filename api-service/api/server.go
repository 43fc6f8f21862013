package api

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hijacksecurity/PravdaPlus/api-service/config"
	"github.com/hijacksecurity/PravdaPlus/api-service/fetcher"
	"github.com/hijacksecurity/PravdaPlus/api-service/handler"
	"github.com/hijacksecurity/PravdaPlus/api-service/middleware"
)

const serviceName = "api-service"

// NewRouter wires the gateway routes. Returned separately from StartServer so
// tests can drive the engine through httptest.
func NewRouter(cfg *config.Config, f *fetcher.Fetcher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.Prometheus(serviceName))

	newsHandler := handler.NewNewsHandler(cfg, f)
	transformHandler := handler.NewTransformHandler(cfg)

	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
	r.GET("/news", newsHandler.GetAll)
	r.GET("/news/:category", newsHandler.GetCategory)
	r.POST("/transform", transformHandler.Relay)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func StartServer(cfg *config.Config) error {
	f := fetcher.New(cfg.FeedTimeout)
	r := NewRouter(cfg, f)

	slog.Info("news gateway listening", slog.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}
