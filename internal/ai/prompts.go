package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viralops/viral-content-bot/internal/models"
)

// DefaultPlatform is used when a run request leaves the platform blank
const DefaultPlatform = "LinkedIn"

// referenceTextLimit caps how much of a top post is quoted in the prompt
const referenceTextLimit = 400

const sentimentPromptTemplate = `You are a viral content analyst specializing in %s growth strategy.

Analyze this %s post and its comments, then return a JSON object with exactly these fields:

{
  "overall_sentiment": <integer 1-5, where 1=very negative, 5=very positive>,
  "tool_usefulness": <integer 1-5, how useful/actionable the content is perceived>,
  "common_questions": ["question 1", "question 2", "question 3"],
  "key_insights": "<2-3 sentence summary of what resonates with the audience and why this post performed>"
}

POST CONTENT:
%s

COMMENTS FROM AUDIENCE:
%s

POST METRICS:
- Likes: %d
- Comments: %d
- Shares: %d

Rules:
- Scores must be integers (not decimals)
- common_questions must be real questions the audience is asking or would ask
- key_insights must explain WHY this content resonated
- Return ONLY valid JSON, no preamble or explanation
`

const generationPromptTemplate = `You are a world-class %s content strategist. Your job is to create viral %s posts.

NICHE: %s
PLATFORM: %s

WHAT RESONATED WITH THIS AUDIENCE (from analysis of top posts):
%s

TOP PERFORMING POSTS FOR REFERENCE:
%s

Generate exactly 3 viral %s posts in different tones. Return a JSON array with exactly this structure:

[
  {
    "hook": "<first 1-2 lines - must be a scroll-stopping opener>",
    "body": "<the main content - use line breaks, numbered lists or bullet points where appropriate>",
    "cta": "<a compelling call to action or closing question>",
    "hashtags": ["hashtag1", "hashtag2", "hashtag3"],
    "viral_score": <integer 7-10 predicting virality>,
    "tone": "<one of: Bold, Vulnerable, Data-Driven, Contrarian, Storytelling>"
  },
  ...
]

Rules:
- Each post must be complete and ready to publish
- Hooks must be direct and provocative (no fluff intros)
- Body should feel like a real expert sharing hard-won knowledge
- Vary the tone across the 3 posts
- viral_score must be an integer
- hashtags should be 3-5 relevant tags without # symbol
- Return ONLY valid JSON array, no preamble
`

// buildSentimentPrompt renders the deterministic sentiment analysis prompt
// for one post
func buildSentimentPrompt(post models.Post, platform string) string {
	commentsBlock := "No comments available."
	if len(post.CommentsText) > 0 {
		var lines []string
		for _, comment := range post.CommentsText {
			lines = append(lines, "- "+comment)
		}
		commentsBlock = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(sentimentPromptTemplate,
		platform, platform,
		post.Text,
		commentsBlock,
		post.Likes, post.Comments, post.Shares,
	)
}

// buildGenerationPrompt renders the deterministic content generation prompt
// from the insights and top posts of one run
func buildGenerationPrompt(niche, platform string, analyses []models.AnalyzedPost) string {
	var insights []string
	for _, a := range analyses {
		if a.KeyInsights != "" {
			insights = append(insights, "- "+a.KeyInsights)
		}
	}
	insightsBlock := "Focus on practical, data-driven, authentic content."
	if len(insights) > 0 {
		insightsBlock = strings.Join(insights, "\n")
	}

	var blocks []string
	for _, p := range topByLikes(analyses, 3) {
		blocks = append(blocks, fmt.Sprintf("POST (Likes: %d, Shares: %d):\n%s",
			p.Likes, p.Shares, truncate(p.Text, referenceTextLimit)))
	}
	topPostsBlock := strings.Join(blocks, "\n\n")

	return fmt.Sprintf(generationPromptTemplate,
		platform, platform,
		niche, platform,
		insightsBlock,
		topPostsBlock,
		platform,
	)
}

// topByLikes returns the n highest-liked analyses, descending; ties keep
// their original relative order
func topByLikes(analyses []models.AnalyzedPost, n int) []models.AnalyzedPost {
	sorted := make([]models.AnalyzedPost, len(analyses))
	copy(sorted, analyses)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Likes > sorted[j].Likes
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// truncate limits text to at most limit characters
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
