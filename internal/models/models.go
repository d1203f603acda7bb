package models

import "time"

// Post source provenance markers.
const (
	SourceMock  = "mock"
	SourceApify = "apify"
)

// Post represents a single social media post fetched by a source
type Post struct {
	URL          string   `json:"url"`
	Author       string   `json:"author"`
	AuthorTitle  string   `json:"author_title"`
	Text         string   `json:"text"`
	Likes        int      `json:"likes"`
	Comments     int      `json:"comments"`
	Shares       int      `json:"shares"`
	CommentsText []string `json:"comments_text"`
	Niche        string   `json:"niche"`
	Source       string   `json:"source"` // "mock" or "apify"
}

// SentimentResult holds the audience sentiment scores for one post
type SentimentResult struct {
	OverallSentiment int      `json:"overall_sentiment"` // 1-5
	ToolUsefulness   int      `json:"tool_usefulness"`   // 1-5
	CommonQuestions  []string `json:"common_questions"`
	KeyInsights      string   `json:"key_insights"`
}

// AnalyzedPost is a post merged with its sentiment analysis
type AnalyzedPost struct {
	Post
	SentimentResult
}

// GeneratedPost is one AI-generated post draft
type GeneratedPost struct {
	Hook       string   `json:"hook"`
	Body       string   `json:"body"`
	CTA        string   `json:"cta"`
	Hashtags   []string `json:"hashtags"`
	ViralScore int      `json:"viral_score"`
	Tone       string   `json:"tone"` // "Bold", "Vulnerable", "Data-Driven", "Contrarian", "Storytelling"
	Platform   string   `json:"platform"`
	Niche      string   `json:"niche"`
}

// RunRequest holds the parameters for one pipeline run
type RunRequest struct {
	Niche      string   `json:"niche"`
	Platform   string   `json:"platform"`
	Keywords   []string `json:"keywords"`
	UseMock    bool     `json:"use_mock"`
	ApifyToken string   `json:"apify_token,omitempty"`
	NumPosts   int      `json:"num_posts"`
}

// RunResult is the outcome of one scrape-analyze-generate run
type RunResult struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	Analyses       []AnalyzedPost  `json:"analyses"`
	GeneratedPosts []GeneratedPost `json:"generated_posts"`
	RunID          int64           `json:"run_id"`
}

// Report summarizes a completed run for notification channels
type Report struct {
	GeneratedAt    time.Time       `json:"generated_at"`
	Niche          string          `json:"niche"`
	Platform       string          `json:"platform"`
	TotalAnalyzed  int             `json:"total_analyzed"`
	GeneratedPosts []GeneratedPost `json:"generated_posts"`
	Summary        map[string]int  `json:"summary"` // sentiment score breakdown
}
