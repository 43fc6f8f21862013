package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hijacksecurity/PravdaPlus/transformer-service/api"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/config"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/model"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/satire"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

const requestBody = `{
  "article": {
    "title": "Summit ends with agreement",
    "description": "Delegates reach a deal.",
    "link": "http://example.com/summit",
    "pub_date": "2023-05-03T15:04:05Z",
    "category": "world"
  }
}`

func postTransform(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transform", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHealthReportsCredentialState(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		router := api.NewRouter(&config.Config{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"openai_configured":false`)
	})

	t.Run("configured", func(t *testing.T) {
		router := api.NewRouter(&config.Config{OpenAIAPIKey: "sk-real-key"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"openai_configured":true`)
	})
}

func TestTransformWithoutCredentialUsesMockGenerator(t *testing.T) {
	router := api.NewRouter(&config.Config{}, nil)

	w := postTransform(router, requestBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.TransformResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "satirical", resp.Style)
	assert.Equal(t, "Summit ends with agreement", resp.Original.Title)
	assert.Equal(t, "2023-05-03T15:04:05Z", resp.Original.PubDate)

	want := satire.Generate(resp.Original)
	assert.Equal(t, want.Title, resp.Transformed.Title)
	assert.Equal(t, want.Description, resp.Transformed.Description)
	assert.Equal(t, want.Content, resp.Transformed.Content)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestTransformIsRepeatable(t *testing.T) {
	router := api.NewRouter(&config.Config{}, nil)

	first := postTransform(router, requestBody)
	second := postTransform(router, requestBody)

	var a, b model.TransformResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))

	assert.Equal(t, a.Transformed, b.Transformed)
}

type stubRewriter struct {
	result model.Transformed
	err    error
	style  string
}

func (s *stubRewriter) Rewrite(ctx context.Context, article model.NewsItem, style string) (model.Transformed, error) {
	s.style = style
	return s.result, s.err
}

func TestTransformWithRewriter(t *testing.T) {
	t.Run("successful rewrite is returned", func(t *testing.T) {
		stub := &stubRewriter{result: model.Transformed{Title: "T", Description: "D", Content: "C"}}
		router := api.NewRouter(&config.Config{OpenAIAPIKey: "sk-real-key"}, stub)

		w := postTransform(router, requestBody)
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.TransformResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "T", resp.Transformed.Title)
		assert.Equal(t, "satirical", stub.style)
	})

	t.Run("rewrite failure degrades to fallback, still 200", func(t *testing.T) {
		stub := &stubRewriter{err: errors.New("connection refused")}
		router := api.NewRouter(&config.Config{OpenAIAPIKey: "sk-real-key"}, stub)

		w := postTransform(router, requestBody)
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.TransformResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, satire.Unavailable(), resp.Transformed)
	})

	t.Run("custom style is forwarded", func(t *testing.T) {
		stub := &stubRewriter{result: model.Transformed{Title: "T"}}
		router := api.NewRouter(&config.Config{OpenAIAPIKey: "sk-real-key"}, stub)

		body := `{"article": {"title": "t", "description": "d", "link": "l", "pub_date": "2023-05-03T15:04:05Z", "category": "world"}, "style": "absurd"}`
		w := postTransform(router, body)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "absurd", stub.style)
	})
}
