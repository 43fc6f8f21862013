package satire

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hijacksecurity/PravdaPlus/transformer-service/config"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/metrics"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/model"
)

const (
	maxCompletionTokens   = 1500
	completionTemperature = 0.9
)

const systemPrompt = "You are a world-class satirical news writer with the wit of The Onion and the creativity of Douglas Adams. Your job is to transform mundane news into hilarious, absurd, yet professionally written satirical articles that make people laugh out loud."

const userPromptTemplate = `You are a brilliant satirical news writer in the style of The Onion, creating clever, witty, and genuinely funny content. Transform this real news story into a masterpiece of satirical journalism.

**Your mission**: Create a completely rewritten article that is:
- Genuinely hilarious and clever
- Satirical but not mean-spirited
- Uses absurd hypothetical scenarios and exaggerated quotes
- Maintains some connection to the original facts but takes creative liberties
- Written like a professional news article but with satirical content
- Family-friendly and avoids offensive content

**Original Article:**
Title: %s
Description: %s

**Requested style**: %s

**Instructions:**
1. Create a NEW satirical headline that's completely different but somehow relates to the original story
2. Write a NEW brief description (2-3 sentences) that sets up the satirical angle
3. Write a FULL satirical article (400-600 words) with:
   - Fictional but believable quotes from made-up experts
   - Absurd statistics or studies
   - Creative scenarios that exaggerate the situation
   - A professional news article structure (location, quotes, context)
   - Subtle humor throughout, not just obvious jokes

**Output Format:**
TITLE: [Your satirical headline]
DESCRIPTION: [Your satirical description]
CONTENT: [Your full satirical article]

Remember: This should read like a real news article that just happens to be completely absurd and funny. Think "The Onion" quality.`

// OpenAIClient wraps the chat completion call used for the real rewrite path.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.OpenAITimeout}
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAIModel,
	}
}

// Rewrite asks the model for a satirical version of the article and parses
// the marker-formatted reply. Callers substitute fallback content on error.
func (c *OpenAIClient) Rewrite(ctx context.Context, article model.NewsItem, style string) (model.Transformed, error) {
	prompt := fmt.Sprintf(userPromptTemplate, article.Title, article.Description, style)

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxCompletionTokens,
		Temperature: completionTemperature,
	})
	metrics.OpenAIRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return model.Transformed{}, err
	}
	if len(resp.Choices) == 0 {
		return model.Transformed{}, errors.New("completion has no choices")
	}

	return ParseCompletion(resp.Choices[0].Message.Content), nil
}
