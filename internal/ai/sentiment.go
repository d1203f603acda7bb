// Package ai scores audience sentiment on fetched posts and drafts new viral
// posts through a remote generative model, degrading to deterministic mock
// output whenever the model is unconfigured or misbehaves.
package ai

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/viralops/viral-content-bot/internal/extract"
	"github.com/viralops/viral-content-bot/internal/models"
)

// Analyzer scores audience sentiment on a single post
type Analyzer struct {
	gen TextGenerator
}

// NewAnalyzer creates a sentiment analyzer. A nil generator means no model
// credential is configured and every call takes the heuristic path.
func NewAnalyzer(gen TextGenerator) *Analyzer {
	return &Analyzer{gen: gen}
}

// IsConfigured reports whether a remote model is available
func (a *Analyzer) IsConfigured() bool {
	return a.gen != nil
}

// Analyze scores one post. It never fails: any remote error is logged and
// replaced by the heuristic result, and malformed model output is absorbed
// by field-level defaults.
func (a *Analyzer) Analyze(ctx context.Context, post models.Post, platform string) models.SentimentResult {
	if platform == "" {
		platform = DefaultPlatform
	}

	if !a.IsConfigured() {
		return heuristicSentiment(post)
	}

	prompt := buildSentimentPrompt(post, platform)

	reply, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		logrus.Errorf("Sentiment analysis failed for %s: %v", post.URL, err)
		return heuristicSentiment(post)
	}

	fields := extract.Object(reply)

	return models.SentimentResult{
		OverallSentiment: clamp(toInt(fields["overall_sentiment"], 3), 1, 5),
		ToolUsefulness:   clamp(toInt(fields["tool_usefulness"], 3), 1, 5),
		CommonQuestions:  toStringSlice(fields["common_questions"]),
		KeyInsights:      toString(fields["key_insights"]),
	}
}
