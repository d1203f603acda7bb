package ai

import (
	"fmt"
	"strings"

	"github.com/viralops/viral-content-bot/internal/models"
)

// heuristicSentiment is the rule-based substitute for the sentiment model:
// scores derive from the engagement ladder, the rest is canned.
func heuristicSentiment(post models.Post) models.SentimentResult {
	score := 2
	switch {
	case post.Likes > 10000:
		score = 5
	case post.Likes > 5000:
		score = 4
	case post.Likes > 1000:
		score = 3
	}

	usefulness := score
	if usefulness > 5 {
		usefulness = 5
	}

	return models.SentimentResult{
		OverallSentiment: score,
		ToolUsefulness:   usefulness,
		CommonQuestions: []string{
			"What tools do you recommend for this?",
			"How long did this take to implement?",
			"Can you share more details about your process?",
		},
		KeyInsights: "This post resonated because it combined personal experience with actionable takeaways. " +
			"The specific numbers and honest tone built credibility, while the format made it easy to skim and share.",
	}
}

// mockGeneratedPosts is the static substitute for the generation model:
// exactly three drafts in fixed tones with the niche substituted in.
func mockGeneratedPosts(niche, platform string) []models.GeneratedPost {
	nicheTag := strings.ReplaceAll(niche, " ", "")

	return []models.GeneratedPost{
		{
			Hook: fmt.Sprintf("I spent 6 months studying every viral %s post on %s.\n\nHere's the pattern nobody talks about:", niche, platform),
			Body: "Most people focus on what to say.\n" +
				"The top 1% focus on when to say it.\n\n" +
				"→ Post between 7-9am or 5-7pm on weekdays\n" +
				"→ Tuesday and Wednesday outperform all other days\n" +
				"→ Your first comment sets the tone for the algorithm\n" +
				"→ Replies in the first 60 minutes are worth 3x\n\n" +
				"The content is the price of entry.\n" +
				"The timing is the multiplier.",
			CTA:        "What's been your best posting time? Drop it below 👇",
			Hashtags:   []string{nicheTag, "LinkedIn", "ContentStrategy", "GrowthHacking"},
			ViralScore: 8,
			Tone:       "Data-Driven",
			Platform:   platform,
			Niche:      niche,
		},
		{
			Hook: fmt.Sprintf("I was completely wrong about %s.\n\nIt took a failure to see it.", niche),
			Body: "For 2 years, I optimized for impressions.\n\n" +
				"I hit 100K views on a post.\n" +
				"Zero inbound leads.\n" +
				"Zero conversations.\n" +
				"Zero revenue.\n\n" +
				"Then I wrote one post for 200 people in my exact niche.\n\n" +
				"11 DMs in 24 hours.\n" +
				"3 became clients.\n\n" +
				"The lesson?\n" +
				"Viral ≠ valuable.\n" +
				"Resonant > Reach.",
			CTA:        "Are you chasing the right metric?",
			Hashtags:   []string{nicheTag, "B2B", "ContentMarketing", "LinkedInTips"},
			ViralScore: 9,
			Tone:       "Vulnerable",
			Platform:   platform,
			Niche:      niche,
		},
		{
			Hook: fmt.Sprintf("The %s playbook is broken.\n\nHere's what replaced it in 2024:", niche),
			Body: "Old playbook:\n" +
				"→ Post daily\n" +
				"→ Broad topics\n" +
				"→ Polish everything\n" +
				"→ Never share failures\n\n" +
				"New playbook:\n" +
				"→ Post 3x/week with intent\n" +
				"→ Hyper-specific audience\n" +
				"→ Raw > Perfect\n" +
				"→ Failures drive 10x more engagement\n\n" +
				"The algorithm didn't change.\n" +
				"The audience did.\n" +
				"They can smell inauthenticity from 3 scrolls away.",
			CTA:        "Which old habit are you still holding onto?",
			Hashtags:   []string{nicheTag, "PersonalBranding", "LinkedIn", "ThoughtLeadership"},
			ViralScore: 8,
			Tone:       "Contrarian",
			Platform:   platform,
			Niche:      niche,
		},
	}
}
