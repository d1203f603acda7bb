package sources

import (
	"context"
	"math/rand"

	"github.com/viralops/viral-content-bot/internal/models"
)

// samplePosts is the fixed pool served in mock mode
var samplePosts = []models.Post{
	{
		URL:         "https://linkedin.com/posts/mock-001",
		Author:      "Sarah Chen",
		AuthorTitle: "Head of Product @ TechCorp",
		Text: "I've been using AI tools for content creation for 6 months now. Here's what actually worked vs what was overhyped:\n\n" +
			"✅ Draft generation: saved me 3 hrs/week\n✅ Repurposing long-form into posts: game changer\n" +
			"❌ Auto-publishing: lost my authentic voice\n❌ Comment replies: felt robotic\n\n" +
			"The key insight: AI as a first draft, human as the final voice.",
		Likes:    4821,
		Comments: 312,
		Shares:   189,
		CommentsText: []string{
			"This is exactly my experience too! AI drafts are great starting points.",
			"What tools do you use for repurposing?",
			"The auto-publishing point is so true - my engagement dropped 40%",
			"Saving this post. Thanks for being honest about the failures too.",
			"Can you share more about your workflow?",
		},
	},
	{
		URL:         "https://linkedin.com/posts/mock-002",
		Author:      "Marcus Williams",
		AuthorTitle: "Founder, GrowthOS",
		Text: "Most LinkedIn advice is wrong.\n\nEveryone says:\n→ Post every day\n→ Use hooks\n→ Add hashtags\n→ Engage in comments\n\n" +
			"What actually grew my audience from 0 to 28K in 8 months:\n→ Posted 3x/week, not 7\n→ Led with data, not opinions\n" +
			"→ One clear idea per post\n→ Replied to EVERY comment in first hour\n\nConsistency > Volume. Always.",
		Likes:    9302,
		Comments: 541,
		Shares:   782,
		CommentsText: []string{
			"The reply in the first hour is a huge algo signal.",
			"I tried posting daily and burned out in 3 weeks.",
			"28K in 8 months is incredible. What niche are you in?",
			"The 'one clear idea per post' tip is underrated.",
			"This is the most practical growth advice I've seen.",
			"Saving this. Quality > quantity is real.",
		},
	},
	{
		URL:         "https://linkedin.com/posts/mock-003",
		Author:      "Priya Nair",
		AuthorTitle: "B2B Content Strategist",
		Text: "Your LinkedIn hook is your whole strategy.\n\nI analyzed 200 viral posts (1000+ reactions) and found 5 patterns:\n\n" +
			"1. Counterintuitive statement → 'Cold outreach is dead. Here's what replaced it.'\n" +
			"2. Specific number → 'I made $340K from 1 LinkedIn post. Here's how.'\n" +
			"3. Personal failure → 'I wasted 2 years on the wrong content strategy.'\n" +
			"4. Bold prediction → 'LinkedIn will kill newsletters in 2025.'\n" +
			"5. Before/after → 'My profile got 3 views/week. Now it gets 30,000.'\n\nWhich one fits your brand?",
		Likes:    7109,
		Comments: 428,
		Shares:   601,
		CommentsText: []string{
			"The specific number pattern is the most powerful in my experience.",
			"I've been using counterintuitive statements and seeing 3x more impressions.",
			"Can you share the full spreadsheet of posts you analyzed?",
			"Number 3 feels the most authentic to me.",
			"This is content strategy gold. Bookmarked.",
		},
	},
	{
		URL:         "https://linkedin.com/posts/mock-004",
		Author:      "David Kim",
		AuthorTitle: "VP Marketing, ScaleAI",
		Text: "I fired our content agency and hired a 22-year-old instead.\n\nResults after 90 days:\n→ Impressions: +340%\n" +
			"→ Followers: +12K\n→ Inbound leads: 47 new conversations\n→ Cost: 60% less\n\n" +
			"What she does differently:\n• She lives on the platform\n• She understands native formats\n" +
			"• She tests fast and kills losers\n• She doesn't overthink it\n\n" +
			"The best content creators aren't in agencies. They're individual creators who grew their own audiences.",
		Likes:    11234,
		Comments: 893,
		Shares:   1102,
		CommentsText: []string{
			"This is the future of marketing. Creators > agencies.",
			"What was her background? Self-taught or formal education?",
			"Bold move. Most executives are too risk-averse to do this.",
			"The 'tests fast and kills losers' point is key.",
			"I had the exact same experience. Agencies are stuck in 2015.",
			"Can you share her LinkedIn? Would love to follow her work.",
			"This is brave to post but I completely agree.",
		},
	},
	{
		URL:         "https://linkedin.com/posts/mock-005",
		Author:      "Aisha Thompson",
		AuthorTitle: "Career Coach | 50K+ Followers",
		Text: "Nobody talks about LinkedIn burnout.\n\nI grew from 0 to 50K followers in 18 months.\n\n" +
			"At month 14, I stopped posting for 6 weeks.\n\nNot because I ran out of ideas.\nNot because I was busy.\n\n" +
			"Because I forgot WHY I was posting.\n\nThe algorithm rewards volume.\nYour soul rewards meaning.\n\n" +
			"Find your 'why' before you find your strategy.",
		Likes:    15823,
		Comments: 1204,
		Shares:   2341,
		CommentsText: []string{
			"This hit different. Taking a break this week.",
			"Thank you for being vulnerable about this.",
			"The algorithm vs soul tension is real.",
			"I'm at month 10 and already feeling this.",
			"The most important post you've written.",
			"Bookmarking this for when I feel the pressure.",
		},
	},
}

// MockSource serves a shuffled, size-capped slice of the sample pool
type MockSource struct{}

// Ensure MockSource implements Source
var _ Source = (*MockSource)(nil)

// NewMockSource creates a mock post source
func NewMockSource() *MockSource {
	return &MockSource{}
}

func (m *MockSource) GetName() string {
	return "mock"
}

func (m *MockSource) IsEnabled() bool {
	return true // sample data never needs credentials
}

// FetchPosts returns up to limit sample posts in random order, each tagged
// with the requested niche. A pool smaller than limit returns the whole pool.
func (m *MockSource) FetchPosts(ctx context.Context, niche string, keywords []string, limit int) ([]models.Post, error) {
	shuffled := make([]models.Post, len(samplePosts))
	copy(shuffled, samplePosts)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(shuffled) {
		limit = len(shuffled)
	}
	selected := shuffled[:limit]

	for i := range selected {
		selected[i].Niche = niche
		selected[i].Source = models.SourceMock
	}

	return selected, nil
}
