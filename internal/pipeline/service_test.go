package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viralops/viral-content-bot/internal/ai"
	"github.com/viralops/viral-content-bot/internal/config"
	"github.com/viralops/viral-content-bot/internal/models"
	"github.com/viralops/viral-content-bot/internal/sources"
	"github.com/viralops/viral-content-bot/internal/storage"
)

// fakeStore is an in-memory storage.Store
type fakeStore struct {
	analyses       []models.AnalyzedPost
	generated      []models.GeneratedPost
	analysesRunAt  time.Time
	generatedRunAt time.Time
	failAnalyses   bool
}

func (f *fakeStore) SaveAnalyses(createdAt time.Time, niche, platform string, analyses []models.AnalyzedPost) error {
	if f.failAnalyses {
		return errors.New("disk full")
	}
	f.analysesRunAt = createdAt
	f.analyses = append(f.analyses, analyses...)
	return nil
}

func (f *fakeStore) SaveGeneratedPosts(createdAt time.Time, posts []models.GeneratedPost) (int64, error) {
	f.generatedRunAt = createdAt
	f.generated = append(f.generated, posts...)
	return int64(len(f.generated)), nil
}

func (f *fakeStore) RecentAnalyses(limit int) ([]storage.AnalysisRecord, error) {
	return nil, nil
}

func (f *fakeStore) RecentGenerated(limit int) ([]storage.GeneratedRecord, error) {
	return nil, nil
}

func (f *fakeStore) ClearHistory() error { return nil }
func (f *fakeStore) Close() error        { return nil }

// fakeProvider returns a fixed post list
type fakeProvider struct {
	posts []models.Post
}

func (f *fakeProvider) FetchPosts(ctx context.Context, req models.RunRequest) []models.Post {
	return f.posts
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultNiche:    "AI tools",
		DefaultPlatform: "LinkedIn",
		DefaultNumPosts: 5,
		UseMockScraper:  true,
	}
}

func newMockService(store storage.Store, provider PostProvider) *Service {
	// nil text generators: sentiment and generation take their mock paths
	return NewService(testConfig(), store, provider, ai.NewAnalyzer(nil), ai.NewGenerator(nil), nil)
}

func TestService_Run_MockEndToEnd(t *testing.T) {
	store := &fakeStore{}
	service := newMockService(store, sources.NewProvider(""))

	result, err := service.Run(context.Background(), models.RunRequest{
		Niche:    "AI tools",
		Platform: "LinkedIn",
		UseMock:  true,
		NumPosts: 3,
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	// Three distinct sample posts, each with a heuristic sentiment score
	require.Len(t, result.Analyses, 3)
	seen := make(map[string]bool)
	for _, analysis := range result.Analyses {
		assert.False(t, seen[analysis.URL])
		seen[analysis.URL] = true
		assert.Contains(t, []int{2, 3, 4, 5}, analysis.OverallSentiment)
		assert.LessOrEqual(t, analysis.ToolUsefulness, analysis.OverallSentiment)
		assert.Equal(t, "AI tools", analysis.Niche)
	}

	// Exactly three static drafts with the fixed tone sequence
	require.Len(t, result.GeneratedPosts, 3)
	assert.Equal(t, "Data-Driven", result.GeneratedPosts[0].Tone)
	assert.Equal(t, "Vulnerable", result.GeneratedPosts[1].Tone)
	assert.Equal(t, "Contrarian", result.GeneratedPosts[2].Tone)
	for _, post := range result.GeneratedPosts {
		assert.Contains(t, post.Hook, "AI tools")
	}

	// Everything persisted under one run timestamp
	assert.Len(t, store.analyses, 3)
	assert.Len(t, store.generated, 3)
	assert.True(t, store.analysesRunAt.Equal(store.generatedRunAt))
	assert.Equal(t, int64(3), result.RunID)
}

func TestService_Run_NoPosts(t *testing.T) {
	service := newMockService(&fakeStore{}, &fakeProvider{})

	_, err := service.Run(context.Background(), models.RunRequest{Niche: "AI tools", NumPosts: 3})

	assert.ErrorIs(t, err, ErrNoPosts)
}

func TestService_Run_StorageFailure(t *testing.T) {
	service := newMockService(&fakeStore{failAnalyses: true}, sources.NewProvider(""))

	_, err := service.Run(context.Background(), models.RunRequest{Niche: "AI tools", UseMock: true, NumPosts: 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store analyses")
}

func TestService_Run_DefaultsApplied(t *testing.T) {
	provider := &fakeProvider{posts: []models.Post{{URL: "https://linkedin.com/posts/1", Likes: 6000}}}
	service := newMockService(&fakeStore{}, provider)

	result, err := service.Run(context.Background(), models.RunRequest{Niche: "AI tools"})
	require.NoError(t, err)

	// Blank platform defaults to LinkedIn, stamped on every generated post
	for _, post := range result.GeneratedPosts {
		assert.Equal(t, "LinkedIn", post.Platform)
	}
}

func TestService_Run_UpdatesMetrics(t *testing.T) {
	provider := &fakeProvider{posts: []models.Post{
		{URL: "https://linkedin.com/posts/1", Likes: 12000, Source: models.SourceMock},
		{URL: "https://linkedin.com/posts/2", Likes: 10, Source: models.SourceMock},
	}}
	service := newMockService(&fakeStore{}, provider)

	_, err := service.Run(context.Background(), models.RunRequest{Niche: "AI tools", NumPosts: 2})
	require.NoError(t, err)

	metrics := service.GetMetrics()
	assert.Contains(t, metrics, `"total_runs": 1`)
	assert.Contains(t, metrics, `"posts_analyzed": 2`)
	assert.Contains(t, metrics, `"mock": 2`)
	// Likes 12000 scores 5, likes 10 scores 2
	assert.Contains(t, metrics, `"2": 1`)
	assert.Contains(t, metrics, `"5": 1`)
	assert.Contains(t, metrics, `"error_count": 0`)
}

func TestService_Run_CountsErrors(t *testing.T) {
	store := &fakeStore{failAnalyses: true}
	service := newMockService(store, sources.NewProvider(""))

	_, err := service.Run(context.Background(), models.RunRequest{Niche: "AI tools", UseMock: true, NumPosts: 2})
	require.Error(t, err)

	metrics := service.GetMetrics()
	assert.Contains(t, metrics, `"error_count": 1`)
	assert.Contains(t, metrics, `"total_runs": 0`)

	// An empty post list counts too
	service = newMockService(&fakeStore{}, &fakeProvider{})
	_, err = service.Run(context.Background(), models.RunRequest{Niche: "AI tools", NumPosts: 2})
	assert.ErrorIs(t, err, ErrNoPosts)
	assert.Contains(t, service.GetMetrics(), `"error_count": 1`)

	// A later successful run keeps the counter
	service.provider = sources.NewProvider("")
	_, err = service.Run(context.Background(), models.RunRequest{Niche: "AI tools", UseMock: true, NumPosts: 2})
	require.NoError(t, err)
	metrics = service.GetMetrics()
	assert.Contains(t, metrics, `"error_count": 1`)
	assert.Contains(t, metrics, `"total_runs": 1`)
}

func TestService_RunScheduled_UsesConfiguredDefaults(t *testing.T) {
	store := &fakeStore{}
	service := newMockService(store, sources.NewProvider(""))

	require.NoError(t, service.RunScheduled())

	assert.Len(t, store.analyses, 5)
	assert.Len(t, store.generated, 3)
	for _, post := range store.generated {
		assert.Equal(t, "AI tools", post.Niche)
	}
}
