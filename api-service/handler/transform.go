package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hijacksecurity/PravdaPlus/api-service/config"
	"github.com/hijacksecurity/PravdaPlus/api-service/metrics"
	"github.com/hijacksecurity/PravdaPlus/api-service/model"
)

// relayArticle is the wire form sent to the transformer: identical to
// model.NewsItem except the pub date travels as RFC 3339 text.
type relayArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	PubDate     string `json:"pub_date"`
	Category    string `json:"category"`
}

type relayPayload struct {
	Article relayArticle `json:"article"`
	Style   string       `json:"style"`
}

type TransformHandler struct {
	cfg    *config.Config
	client *http.Client
}

func NewTransformHandler(cfg *config.Config) *TransformHandler {
	return &TransformHandler{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.RelayTimeout},
	}
}

// Relay forwards a transform request to the transformer service and passes
// its 200 response through unchanged. Timeouts map to 504, upstream errors
// keep the upstream status, anything else is a 500.
func (h *TransformHandler) Relay(c *gin.Context) {
	var req model.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Style == "" {
		req.Style = "satirical"
	}

	payload, err := json.Marshal(relayPayload{
		Article: relayArticle{
			Title:       req.Article.Title,
			Description: req.Article.Description,
			Link:        req.Article.Link,
			PubDate:     req.Article.PubDate.Format(time.RFC3339),
			Category:    req.Article.Category,
		},
		Style: req.Style,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transformation failed", "details": err.Error()})
		return
	}

	httpReq, err := http.NewRequestWithContext(c.Request.Context(),
		http.MethodPost, h.cfg.TransformerURL+"/transform", bytes.NewReader(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transformation failed", "details": err.Error()})
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			slog.Warn("transformer relay timed out", slog.String("url", h.cfg.TransformerURL))
			metrics.TransformRelaysTotal.WithLabelValues("timeout").Inc()
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Transformer service timeout"})
			return
		}
		slog.Error("transformer relay failed", slog.String("error", err.Error()))
		metrics.TransformRelaysTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transformation failed", "details": err.Error()})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.TransformRelaysTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transformation failed", "details": err.Error()})
		return
	}

	if resp.StatusCode != http.StatusOK {
		slog.Warn("transformer returned error status",
			slog.Int("status", resp.StatusCode))
		metrics.TransformRelaysTotal.WithLabelValues("upstream_error").Inc()
		c.JSON(resp.StatusCode, gin.H{"error": "Transformer service error", "details": string(body)})
		return
	}

	metrics.TransformRelaysTotal.WithLabelValues("success").Inc()
	c.Data(http.StatusOK, "application/json", body)
}

func isTimeout(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
