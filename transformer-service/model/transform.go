package model

// NewsItem mirrors the gateway's article shape; the pub date arrives as
// RFC 3339 text and is echoed back untouched.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	PubDate     string `json:"pub_date"`
	Category    string `json:"category"`
}

type TransformRequest struct {
	Article NewsItem `json:"article" binding:"required"`
	Style   string   `json:"style"`
}

// Transformed is the rewritten article. Its JSON form is the three-key
// mapping clients consume.
type Transformed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type TransformResponse struct {
	Original    NewsItem    `json:"original"`
	Transformed Transformed `json:"transformed"`
	Style       string      `json:"style"`
	Timestamp   string      `json:"timestamp"`
	Status      string      `json:"status"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	OpenAIConfigured bool   `json:"openai_configured"`
}
