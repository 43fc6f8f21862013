package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/hijacksecurity/PravdaPlus/api-service/metrics"
	"github.com/hijacksecurity/PravdaPlus/api-service/model"
)

// BBC pubDate is RFC 2822; only the first 25 characters are significant.
const pubDateLayout = "Mon, 02 Jan 2006 15:04:05"

type Fetcher struct {
	client *http.Client
	parser *gofeed.Parser
}

func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		parser: gofeed.NewParser(),
	}
}

// Fetch loads one feed and returns up to limit items. A broken feed degrades
// to an empty list so a single source can never fail an aggregate request.
func (f *Fetcher) Fetch(ctx context.Context, category, feedURL string, limit int) []model.NewsItem {
	items, err := f.fetch(ctx, category, feedURL, limit)
	if err != nil {
		slog.Warn("feed fetch failed",
			slog.String("category", category),
			slog.String("url", feedURL),
			slog.String("error", err.Error()))
		metrics.FeedFetchesTotal.WithLabelValues(category, "error").Inc()
		return []model.NewsItem{}
	}

	metrics.FeedFetchesTotal.WithLabelValues(category, "success").Inc()
	metrics.FeedItemsReturned.WithLabelValues(category).Add(float64(len(items)))
	return items
}

// FetchAll fans out one goroutine per configured feed and waits for all of
// them; every category gets an entry even when its feed is unreachable.
func (f *Fetcher) FetchAll(ctx context.Context, feeds map[string]string, limit int) map[string][]model.NewsItem {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string][]model.NewsItem, len(feeds))
	)

	for category, feedURL := range feeds {
		wg.Add(1)
		go func(category, feedURL string) {
			defer wg.Done()
			items := f.Fetch(ctx, category, feedURL, limit)
			mu.Lock()
			results[category] = items
			mu.Unlock()
		}(category, feedURL)
	}

	wg.Wait()
	return results
}

func (f *Fetcher) fetch(ctx context.Context, category, feedURL string, limit int) ([]model.NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	feed, err := f.parser.ParseString(string(body))
	if err != nil {
		return nil, err
	}

	entries := feed.Items
	if len(entries) > limit {
		entries = entries[:limit]
	}

	items := make([]model.NewsItem, 0, len(entries))
	for _, entry := range entries {
		title := strings.TrimSpace(entry.Title)
		description := strings.TrimSpace(entry.Description)
		link := strings.TrimSpace(entry.Link)
		if title == "" || description == "" || link == "" {
			continue
		}

		items = append(items, model.NewsItem{
			Title:       title,
			Description: description,
			Link:        link,
			PubDate:     parsePubDate(entry.Published),
			Category:    category,
		})
	}

	return items, nil
}

func parsePubDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if len(raw) > 25 {
		raw = raw[:25]
	}

	parsed, err := time.Parse(pubDateLayout, raw)
	if err != nil {
		return time.Now()
	}
	return parsed
}
