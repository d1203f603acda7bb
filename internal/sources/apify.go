package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/viralops/viral-content-bot/internal/models"
)

const apifyActorID = "apify~linkedin-post-search-scraper"

// ApifySource fetches LinkedIn posts through the Apify post search scraper
type ApifySource struct {
	token   string
	baseURL string
	client  *resty.Client
}

// Ensure ApifySource implements Source
var _ Source = (*ApifySource)(nil)

type apifyRunRequest struct {
	Queries    []string               `json:"queries"`
	MaxResults int                    `json:"maxResults"`
	Proxy      map[string]interface{} `json:"proxy"`
}

// NewApifySource creates an Apify-backed post source
func NewApifySource(token string) *ApifySource {
	return &ApifySource{
		token:   token,
		baseURL: "https://api.apify.com",
		client:  resty.New().SetTimeout(60 * time.Second),
	}
}

func (a *ApifySource) GetName() string {
	return "apify"
}

func (a *ApifySource) IsEnabled() bool {
	return a.token != ""
}

// FetchPosts runs the scraper actor synchronously and normalizes its dataset
// items into posts. One attempt, no retry: any failure is returned and the
// provider falls back to mock data.
func (a *ApifySource) FetchPosts(ctx context.Context, niche string, keywords []string, limit int) ([]models.Post, error) {
	if !a.IsEnabled() {
		return nil, fmt.Errorf("apify token is not configured")
	}
	if len(keywords) == 0 {
		keywords = []string{niche}
	}

	runURL := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items", a.baseURL, apifyActorID)

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+a.token).
		SetBody(apifyRunRequest{
			Queries:    keywords,
			MaxResults: limit,
			Proxy:      map[string]interface{}{"useApifyProxy": true},
		}).
		Post(runURL)

	if err != nil {
		return nil, fmt.Errorf("apify request failed: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("apify API returned status %d", resp.StatusCode())
	}

	var rawPosts []map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &rawPosts); err != nil {
		return nil, fmt.Errorf("failed to decode apify payload: %w", err)
	}

	posts := make([]models.Post, 0, len(rawPosts))
	for _, raw := range rawPosts {
		posts = append(posts, normalizePost(raw, niche))
	}

	return posts, nil
}

// normalizePost maps a heterogeneous scraper item onto the canonical post
// shape; for each target field the first non-empty source field wins
func normalizePost(raw map[string]interface{}, niche string) models.Post {
	author := stringField(raw, "authorName")
	if author == "" {
		if nested, ok := raw["author"].(map[string]interface{}); ok {
			author = stringField(nested, "name")
		}
	}
	if author == "" {
		author = "Unknown"
	}

	return models.Post{
		URL:          firstStringField(raw, "url", "postUrl"),
		Author:       author,
		AuthorTitle:  stringField(raw, "authorTitle"),
		Text:         firstStringField(raw, "text", "content"),
		Likes:        firstIntField(raw, "likesCount", "likes"),
		Comments:     firstIntField(raw, "commentsCount", "comments"),
		Shares:       firstIntField(raw, "sharesCount", "shares"),
		CommentsText: stringSliceField(raw, "topComments"),
		Niche:        niche,
		Source:       models.SourceApify,
	}
}

func stringField(raw map[string]interface{}, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func firstStringField(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s := stringField(raw, key); s != "" {
			return s
		}
	}
	return ""
}

func firstIntField(raw map[string]interface{}, keys ...string) int {
	for _, key := range keys {
		if n, ok := raw[key].(float64); ok && n != 0 {
			return int(n)
		}
	}
	return 0
}

func stringSliceField(raw map[string]interface{}, key string) []string {
	var result []string
	items, ok := raw[key].([]interface{})
	if !ok {
		return result
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
