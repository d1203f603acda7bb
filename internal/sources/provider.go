// Package sources supplies the raw posts a pipeline run works on, either
// from a fixed in-memory sample pool or from an external scraping service
// with best-effort fallback to the pool.
package sources

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/viralops/viral-content-bot/internal/models"
)

// Provider resolves which source serves a run and guarantees a result:
// the real scraper is tried at most once, and every failure falls through
// to the mock pool.
type Provider struct {
	scraper Source // nil when no token is configured
	mock    *MockSource
}

// NewProvider creates a provider. An empty token leaves the scraper unset
// and every non-mock request degrades to mock data.
func NewProvider(apifyToken string) *Provider {
	p := &Provider{mock: NewMockSource()}
	if apifyToken != "" {
		p.scraper = NewApifySource(apifyToken)
	}
	return p
}

// FetchPosts returns the posts for one run. It never returns an error: the
// scraper path degrades to the mock pool, and an empty result is left for
// the caller to judge. A request-scoped token overrides the configured one.
func (p *Provider) FetchPosts(ctx context.Context, req models.RunRequest) []models.Post {
	scraper := p.scraper
	if req.ApifyToken != "" {
		scraper = NewApifySource(req.ApifyToken)
	}

	if !req.UseMock && scraper != nil && scraper.IsEnabled() {
		posts, err := scraper.FetchPosts(ctx, req.Niche, req.Keywords, req.NumPosts)
		if err == nil {
			logrus.Infof("Fetched %d posts from %s", len(posts), scraper.GetName())
			return posts
		}
		logrus.Errorf("Scraper %s failed: %v. Falling back to mock posts", scraper.GetName(), err)
	}

	posts, _ := p.mock.FetchPosts(ctx, req.Niche, req.Keywords, req.NumPosts)
	return posts
}
