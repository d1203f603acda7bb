package storage

import (
	"time"

	"github.com/viralops/viral-content-bot/internal/models"
)

// AnalysisRecord is one persisted post analysis row
type AnalysisRecord struct {
	ID               int64     `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Niche            string    `json:"niche"`
	Platform         string    `json:"platform"`
	PostURL          string    `json:"post_url"`
	PostText         string    `json:"post_text"`
	Author           string    `json:"author"`
	Likes            int       `json:"likes"`
	Comments         int       `json:"comments"`
	Shares           int       `json:"shares"`
	OverallSentiment int       `json:"overall_sentiment"`
	ToolUsefulness   int       `json:"tool_usefulness"`
	CommonQuestions  []string  `json:"common_questions"`
	KeyInsights      string    `json:"key_insights"`
}

// GeneratedRecord is one persisted generated post row
type GeneratedRecord struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Niche      string    `json:"niche"`
	Platform   string    `json:"platform"`
	Hook       string    `json:"hook"`
	Body       string    `json:"body"`
	CTA        string    `json:"cta"`
	Hashtags   []string  `json:"hashtags"`
	ViralScore int       `json:"viral_score"`
	Tone       string    `json:"tone"`
}

// Store defines the contract for the append-only run history store
type Store interface {
	SaveAnalyses(createdAt time.Time, niche, platform string, analyses []models.AnalyzedPost) error
	SaveGeneratedPosts(createdAt time.Time, posts []models.GeneratedPost) (int64, error)
	RecentAnalyses(limit int) ([]AnalysisRecord, error)
	RecentGenerated(limit int) ([]GeneratedRecord, error)
	ClearHistory() error
	Close() error
}
