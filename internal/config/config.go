package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Gemini AI configuration
	GeminiAPIKey string
	GeminiModel  string

	// Scraper configuration
	ApifyToken     string
	UseMockScraper bool

	// Persistence configuration
	DBPath string

	// Defaults for scheduled runs
	DefaultNiche    string
	DefaultPlatform string
	DefaultKeywords []string
	DefaultNumPosts int

	// Schedule configuration: "daily", "weekly" or "" (disabled)
	RunSchedule string

	// Notification configuration
	WebhookURL        string
	NotificationEmail string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		ApifyToken:     getEnv("APIFY_TOKEN", ""),
		UseMockScraper: getBoolEnv("USE_MOCK_SCRAPER", true),

		DBPath: getEnv("DB_PATH", "viral_content.db"),

		DefaultNiche:    getEnv("DEFAULT_NICHE", "AI tools"),
		DefaultPlatform: getEnv("DEFAULT_PLATFORM", "LinkedIn"),
		DefaultKeywords: getSliceEnv("DEFAULT_KEYWORDS", nil),
		DefaultNumPosts: getIntEnv("DEFAULT_NUM_POSTS", 5),

		RunSchedule: getEnv("RUN_SCHEDULE", ""),

		WebhookURL:        getEnv("WEBHOOK_URL", ""),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getIntEnv("SMTP_PORT", 587),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.RunSchedule != "" && c.RunSchedule != "daily" && c.RunSchedule != "weekly" {
		return fmt.Errorf("RUN_SCHEDULE must be 'daily', 'weekly' or empty")
	}

	if c.DefaultNumPosts < 1 {
		return fmt.Errorf("DEFAULT_NUM_POSTS must be at least 1")
	}

	if c.NotificationEmail != "" {
		if c.SMTPHost == "" || c.SMTPUsername == "" || c.SMTPPassword == "" {
			return fmt.Errorf("SMTP configuration is required when NOTIFICATION_EMAIL is set")
		}
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
