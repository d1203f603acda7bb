package ai

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/viralops/viral-content-bot/internal/extract"
	"github.com/viralops/viral-content-bot/internal/models"
)

// GeneratedPostCount is the fixed number of drafts produced per run
const GeneratedPostCount = 3

// Generator drafts new viral posts from the analyses of one run
type Generator struct {
	gen TextGenerator
}

// NewGenerator creates a content generator. A nil generator means no model
// credential is configured and every call returns the static mock drafts.
func NewGenerator(gen TextGenerator) *Generator {
	return &Generator{gen: gen}
}

// IsConfigured reports whether a remote model is available
func (g *Generator) IsConfigured() bool {
	return g.gen != nil
}

// Generate produces exactly GeneratedPostCount drafts. Any failure in the
// model path - the call itself, array extraction, element validation, or a
// wrong item count - falls back to the static mock as a whole, so the count
// invariant holds on every path. Platform and niche are always stamped from
// the arguments, overriding whatever the model returned.
func (g *Generator) Generate(ctx context.Context, niche, platform string, analyses []models.AnalyzedPost) []models.GeneratedPost {
	if platform == "" {
		platform = DefaultPlatform
	}

	if !g.IsConfigured() {
		return mockGeneratedPosts(niche, platform)
	}

	prompt := buildGenerationPrompt(niche, platform, analyses)

	reply, err := g.gen.Generate(ctx, prompt)
	if err != nil {
		logrus.Errorf("Content generation failed: %v", err)
		return mockGeneratedPosts(niche, platform)
	}

	items, err := extract.Array(reply)
	if err != nil {
		logrus.Errorf("Content generation returned no parsable array: %v", err)
		return mockGeneratedPosts(niche, platform)
	}

	posts := make([]models.GeneratedPost, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			logrus.Errorf("Content generation returned a non-object item, using mock content")
			return mockGeneratedPosts(niche, platform)
		}

		post := models.GeneratedPost{
			Hook:       toString(fields["hook"]),
			Body:       toString(fields["body"]),
			CTA:        toString(fields["cta"]),
			Hashtags:   toStringSlice(fields["hashtags"]),
			ViralScore: toInt(fields["viral_score"], 7),
			Tone:       toString(fields["tone"]),
			Platform:   platform,
			Niche:      niche,
		}
		if post.Tone == "" {
			post.Tone = "Bold"
		}
		posts = append(posts, post)
	}

	if len(posts) != GeneratedPostCount {
		logrus.Errorf("Content generation returned %d posts, want %d, using mock content", len(posts), GeneratedPostCount)
		return mockGeneratedPosts(niche, platform)
	}

	return posts
}
