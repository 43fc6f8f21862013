package satire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hijacksecurity/PravdaPlus/transformer-service/config"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			MaxTokens   int     `json:"max_tokens"`
			Temperature float64 `json:"temperature"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		assert.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "Title: Summit ends with agreement")
		assert.Contains(t, req.Messages[1].Content, "TITLE: [Your satirical headline]")
		assert.Equal(t, 1500, req.MaxTokens)
		assert.InDelta(t, 0.9, req.Temperature, 0.001)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRewrite(t *testing.T) {
	reply := "TITLE: Satirical Headline\nDESCRIPTION: Satirical setup.\nCONTENT: Full body."
	server := completionServer(t, reply)

	client := NewOpenAIClient(&config.Config{
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: server.URL + "/v1",
		OpenAIModel:   "gpt-4o",
		OpenAITimeout: 5 * time.Second,
	})

	got, err := client.Rewrite(context.Background(),
		article("Summit ends with agreement", "world"), "satirical")
	require.NoError(t, err)

	assert.Equal(t, "Satirical Headline", got.Title)
	assert.Equal(t, "Satirical setup.", got.Description)
	assert.Equal(t, "Full body.", got.Content)
}

func TestRewriteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewOpenAIClient(&config.Config{
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: server.URL + "/v1",
		OpenAIModel:   "gpt-4o",
		OpenAITimeout: 5 * time.Second,
	})

	_, err := client.Rewrite(context.Background(),
		article("Summit ends with agreement", "world"), "satirical")
	require.Error(t, err)
}
