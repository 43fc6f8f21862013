package model

import "time"

// NewsItem is one parsed feed entry. Category is the configured feed key the
// item was fetched under, not anything taken from the feed body.
type NewsItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	PubDate     time.Time `json:"pub_date"`
	Category    string    `json:"category"`
}

// TransformRequest is relayed to the transformer service as-is, except that
// the pub date is serialized to RFC 3339 text on the wire.
type TransformRequest struct {
	Article NewsItem `json:"article" binding:"required"`
	Style   string   `json:"style"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
