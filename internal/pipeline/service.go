// Package pipeline orchestrates one scrape-analyze-generate run and persists
// its results.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/viralops/viral-content-bot/internal/ai"
	"github.com/viralops/viral-content-bot/internal/config"
	"github.com/viralops/viral-content-bot/internal/models"
	"github.com/viralops/viral-content-bot/internal/notifications"
	"github.com/viralops/viral-content-bot/internal/storage"
)

// ErrNoPosts is returned when no source produced any posts; it is the one
// failure surfaced to the caller instead of being absorbed by a fallback
var ErrNoPosts = errors.New("no posts found for the given inputs")

// PostProvider supplies the raw posts for one run
type PostProvider interface {
	FetchPosts(ctx context.Context, req models.RunRequest) []models.Post
}

// Service runs the content pipeline
type Service struct {
	config    *config.Config
	store     storage.Store
	provider  PostProvider
	analyzer  *ai.Analyzer
	generator *ai.Generator
	notifier  notifications.NotificationInterface
	metrics   *Metrics
	mu        sync.RWMutex
}

// Metrics holds pipeline run metrics
type Metrics struct {
	TotalRuns          int            `json:"total_runs"`
	LastRun            time.Time      `json:"last_run"`
	LastRunDuration    string         `json:"last_run_duration"`
	PostsAnalyzed      int            `json:"posts_analyzed"`
	ErrorCount         int            `json:"error_count"`
	SourceBreakdown    map[string]int `json:"source_breakdown"`
	SentimentBreakdown map[string]int `json:"sentiment_breakdown"`
}

// NewService creates a pipeline service. The notifier may be nil when no
// notification channel is configured.
func NewService(cfg *config.Config, store storage.Store, provider PostProvider, analyzer *ai.Analyzer, generator *ai.Generator, notifier notifications.NotificationInterface) *Service {
	return &Service{
		config:    cfg,
		store:     store,
		provider:  provider,
		analyzer:  analyzer,
		generator: generator,
		notifier:  notifier,
		metrics: &Metrics{
			SourceBreakdown:    make(map[string]int),
			SentimentBreakdown: make(map[string]int),
		},
	}
}

// Run executes one pipeline run: fetch posts, score each one in list order,
// generate drafts from the analyses, and persist everything under a single
// run timestamp. Sentiment and generation never fail (they degrade to mock
// output); an empty post list and storage errors are the only failures.
func (s *Service) Run(ctx context.Context, req models.RunRequest) (*models.RunResult, error) {
	start := time.Now()

	if req.Platform == "" {
		req.Platform = ai.DefaultPlatform
	}
	if req.NumPosts <= 0 {
		req.NumPosts = s.config.DefaultNumPosts
	}

	logrus.Infof("Starting pipeline run: niche=%q platform=%s posts=%d mock=%v",
		req.Niche, req.Platform, req.NumPosts, req.UseMock)

	posts := s.provider.FetchPosts(ctx, req)
	if len(posts) == 0 {
		s.recordError()
		return nil, ErrNoPosts
	}

	runAt := time.Now().UTC()

	analyses := make([]models.AnalyzedPost, 0, len(posts))
	for _, post := range posts {
		sentiment := s.analyzer.Analyze(ctx, post, req.Platform)
		analyses = append(analyses, models.AnalyzedPost{Post: post, SentimentResult: sentiment})
	}

	if err := s.store.SaveAnalyses(runAt, req.Niche, req.Platform, analyses); err != nil {
		s.recordError()
		return nil, fmt.Errorf("failed to store analyses: %w", err)
	}

	generated := s.generator.Generate(ctx, req.Niche, req.Platform, analyses)

	runID, err := s.store.SaveGeneratedPosts(runAt, generated)
	if err != nil {
		s.recordError()
		return nil, fmt.Errorf("failed to store generated posts: %w", err)
	}

	s.updateMetrics(analyses, time.Since(start))

	logrus.Infof("Pipeline run completed in %v: %d analyses, %d generated posts",
		time.Since(start), len(analyses), len(generated))

	return &models.RunResult{
		Success:        true,
		Message:        fmt.Sprintf("Pipeline completed. Analyzed %d posts, generated %d viral posts.", len(analyses), len(generated)),
		Analyses:       analyses,
		GeneratedPosts: generated,
		RunID:          runID,
	}, nil
}

// RunScheduled executes a run with the configured defaults and sends the
// report to the notification channels, if any. Used by the cron scheduler.
func (s *Service) RunScheduled() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	req := models.RunRequest{
		Niche:    s.config.DefaultNiche,
		Platform: s.config.DefaultPlatform,
		Keywords: s.config.DefaultKeywords,
		UseMock:  s.config.UseMockScraper,
		NumPosts: s.config.DefaultNumPosts,
	}

	result, err := s.Run(ctx, req)
	if err != nil {
		return err
	}

	if s.notifier != nil {
		if err := s.notifier.SendReport(buildReport(req, result)); err != nil {
			logrus.Errorf("Failed to send run report: %v", err)
		}
	}

	return nil
}

func buildReport(req models.RunRequest, result *models.RunResult) *models.Report {
	summary := make(map[string]int)
	for _, a := range result.Analyses {
		summary[strconv.Itoa(a.OverallSentiment)]++
	}

	return &models.Report{
		GeneratedAt:    time.Now().UTC(),
		Niche:          req.Niche,
		Platform:       req.Platform,
		TotalAnalyzed:  len(result.Analyses),
		GeneratedPosts: result.GeneratedPosts,
		Summary:        summary,
	}
}

// recordError counts a failed run; the counter survives across runs so
// intermittent failures stay visible on /metrics.
func (s *Service) recordError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.ErrorCount++
}

func (s *Service) updateMetrics(analyses []models.AnalyzedPost, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.TotalRuns++
	s.metrics.LastRun = time.Now()
	s.metrics.LastRunDuration = duration.String()
	s.metrics.PostsAnalyzed = len(analyses)

	s.metrics.SourceBreakdown = make(map[string]int)
	s.metrics.SentimentBreakdown = make(map[string]int)
	for _, a := range analyses {
		s.metrics.SourceBreakdown[a.Source]++
		s.metrics.SentimentBreakdown[strconv.Itoa(a.OverallSentiment)]++
	}
}

// GetMetrics returns current metrics as JSON
func (s *Service) GetMetrics() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, _ := json.MarshalIndent(s.metrics, "", "  ")
	return string(data)
}
