package sources

import (
	"context"

	"github.com/viralops/viral-content-bot/internal/models"
)

// Source interface defines the contract for all post sources
type Source interface {
	GetName() string
	FetchPosts(ctx context.Context, niche string, keywords []string, limit int) ([]models.Post, error)
	IsEnabled() bool
}
