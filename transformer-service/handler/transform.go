package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hijacksecurity/PravdaPlus/transformer-service/config"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/metrics"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/model"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/satire"
)

const Version = "1.0.0"

// Rewriter is the backend-powered rewrite path; nil means no usable
// credential and the seeded mock generator runs instead.
type Rewriter interface {
	Rewrite(ctx context.Context, article model.NewsItem, style string) (model.Transformed, error)
}

type TransformHandler struct {
	cfg      *config.Config
	rewriter Rewriter
}

func NewTransformHandler(cfg *config.Config, rewriter Rewriter) *TransformHandler {
	return &TransformHandler{cfg: cfg, rewriter: rewriter}
}

// Transform rewrites the submitted article. Backend failures never surface:
// they degrade to canned content and the response stays a 200 success.
func (h *TransformHandler) Transform(c *gin.Context) {
	var req model.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Style == "" {
		req.Style = "satirical"
	}

	var transformed model.Transformed
	if h.rewriter == nil {
		transformed = satire.Generate(req.Article)
		metrics.TransformationsTotal.WithLabelValues("mock").Inc()
	} else {
		var err error
		transformed, err = h.rewriter.Rewrite(c.Request.Context(), req.Article, req.Style)
		if err != nil {
			slog.Warn("openai rewrite failed, serving fallback article",
				slog.String("title", req.Article.Title),
				slog.String("error", err.Error()))
			transformed = satire.Unavailable()
			metrics.TransformationsTotal.WithLabelValues("fallback").Inc()
		} else {
			metrics.TransformationsTotal.WithLabelValues("openai").Inc()
		}
	}

	c.JSON(http.StatusOK, model.TransformResponse{
		Original:    req.Article,
		Transformed: transformed,
		Style:       req.Style,
		Timestamp:   time.Now().Format(time.RFC3339),
		Status:      "success",
	})
}

func Health(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, model.HealthResponse{
			Status:           "healthy",
			Timestamp:        time.Now().Format(time.RFC3339),
			OpenAIConfigured: cfg.OpenAIConfigured(),
		})
	}
}

func Root(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":           "PravdaPlus Transformer",
			"version":           Version,
			"openai_configured": cfg.OpenAIConfigured(),
			"endpoints": []string{
				"/health",
				"/transform",
				"/metrics",
			},
		})
	}
}
