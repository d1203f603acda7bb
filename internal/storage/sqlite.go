package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/viralops/viral-content-bot/internal/models"
)

// parseCreatedAt parses a stored RFC3339 timestamp. Rows written by this
// store always parse; anything else is logged and surfaced as a zero time
// rather than failing the whole listing.
func parseCreatedAt(table string, id int64, value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logrus.Warnf("Invalid created_at %q on %s row %d: %v", value, table, id, err)
	}
	return parsed
}

// SQLiteStore persists run history in a local SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path and ensures the
// history tables exist
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	analysesTable := `
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT,
		niche TEXT,
		platform TEXT,
		post_url TEXT,
		post_text TEXT,
		author TEXT,
		likes INTEGER,
		comments INTEGER,
		shares INTEGER,
		overall_sentiment INTEGER,
		tool_usefulness INTEGER,
		common_questions TEXT,
		key_insights TEXT
	);`

	generatedTable := `
	CREATE TABLE IF NOT EXISTS generated_content (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT,
		niche TEXT,
		platform TEXT,
		hook TEXT,
		body TEXT,
		cta TEXT,
		hashtags TEXT,
		viral_score INTEGER,
		tone TEXT
	);`

	for _, table := range []string{analysesTable, generatedTable} {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveAnalyses appends one row per analyzed post, all stamped with the run
// timestamp
func (s *SQLiteStore) SaveAnalyses(createdAt time.Time, niche, platform string, analyses []models.AnalyzedPost) error {
	query := `
	INSERT INTO analyses
	(created_at, niche, platform, post_url, post_text, author, likes, comments, shares,
	 overall_sentiment, tool_usefulness, common_questions, key_insights)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, a := range analyses {
		questions, err := json.Marshal(a.CommonQuestions)
		if err != nil {
			return fmt.Errorf("failed to encode common questions: %w", err)
		}

		_, err = s.db.Exec(query,
			createdAt.UTC().Format(time.RFC3339),
			niche, platform,
			a.URL, a.Text, a.Author,
			a.Likes, a.Comments, a.Shares,
			a.OverallSentiment, a.ToolUsefulness,
			string(questions), a.KeyInsights,
		)
		if err != nil {
			return fmt.Errorf("failed to insert analysis for %s: %w", a.URL, err)
		}
	}

	return nil
}

// SaveGeneratedPosts appends one row per generated post and returns the last
// inserted row id, which identifies the run
func (s *SQLiteStore) SaveGeneratedPosts(createdAt time.Time, posts []models.GeneratedPost) (int64, error) {
	query := `
	INSERT INTO generated_content
	(created_at, niche, platform, hook, body, cta, hashtags, viral_score, tone)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var lastID int64
	for _, p := range posts {
		hashtags, err := json.Marshal(p.Hashtags)
		if err != nil {
			return 0, fmt.Errorf("failed to encode hashtags: %w", err)
		}

		result, err := s.db.Exec(query,
			createdAt.UTC().Format(time.RFC3339),
			p.Niche, p.Platform,
			p.Hook, p.Body, p.CTA,
			string(hashtags), p.ViralScore, p.Tone,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert generated post: %w", err)
		}

		if id, err := result.LastInsertId(); err == nil {
			lastID = id
		}
	}

	return lastID, nil
}

// RecentAnalyses returns the most recent analysis rows, newest first
func (s *SQLiteStore) RecentAnalyses(limit int) ([]AnalysisRecord, error) {
	query := `
	SELECT id, created_at, niche, platform, post_url, post_text, author,
	       likes, comments, shares, overall_sentiment, tool_usefulness,
	       common_questions, key_insights
	FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var record AnalysisRecord
		var createdAt, questions string

		err := rows.Scan(&record.ID, &createdAt, &record.Niche, &record.Platform,
			&record.PostURL, &record.PostText, &record.Author,
			&record.Likes, &record.Comments, &record.Shares,
			&record.OverallSentiment, &record.ToolUsefulness,
			&questions, &record.KeyInsights)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}

		record.CreatedAt = parseCreatedAt("analyses", record.ID, createdAt)
		record.CommonQuestions = decodeStringSlice(questions)
		records = append(records, record)
	}

	return records, rows.Err()
}

// RecentGenerated returns the most recent generated post rows, newest first
func (s *SQLiteStore) RecentGenerated(limit int) ([]GeneratedRecord, error) {
	query := `
	SELECT id, created_at, niche, platform, hook, body, cta, hashtags, viral_score, tone
	FROM generated_content ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generated content: %w", err)
	}
	defer rows.Close()

	var records []GeneratedRecord
	for rows.Next() {
		var record GeneratedRecord
		var createdAt, hashtags string

		err := rows.Scan(&record.ID, &createdAt, &record.Niche, &record.Platform,
			&record.Hook, &record.Body, &record.CTA,
			&hashtags, &record.ViralScore, &record.Tone)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generated row: %w", err)
		}

		record.CreatedAt = parseCreatedAt("generated_content", record.ID, createdAt)
		record.Hashtags = decodeStringSlice(hashtags)
		records = append(records, record)
	}

	return records, rows.Err()
}

// ClearHistory deletes all stored rows from both tables
func (s *SQLiteStore) ClearHistory() error {
	for _, table := range []string{"analyses", "generated_content"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func decodeStringSlice(encoded string) []string {
	var result []string
	if err := json.Unmarshal([]byte(encoded), &result); err != nil {
		return nil
	}
	return result
}
