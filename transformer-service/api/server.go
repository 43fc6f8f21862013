package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hijacksecurity/PravdaPlus/transformer-service/config"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/handler"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/middleware"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/satire"
)

const serviceName = "transformer-service"

// NewRouter wires the transformer routes; rewriter may be nil when no
// credential is configured.
func NewRouter(cfg *config.Config, rewriter handler.Rewriter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Prometheus(serviceName))

	transformHandler := handler.NewTransformHandler(cfg, rewriter)

	r.GET("/", handler.Root(cfg))
	r.GET("/health", handler.Health(cfg))
	r.POST("/transform", transformHandler.Transform)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func StartServer(cfg *config.Config) error {
	var rewriter handler.Rewriter
	if cfg.OpenAIConfigured() {
		rewriter = satire.NewOpenAIClient(cfg)
		slog.Info("openai rewrite path enabled", slog.String("model", cfg.OpenAIModel))
	} else {
		slog.Warn("OpenAI API key not configured, transformation will use mock responses")
	}

	r := NewRouter(cfg, rewriter)

	slog.Info("transformer listening", slog.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}
