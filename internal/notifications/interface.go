package notifications

import "github.com/viralops/viral-content-bot/internal/models"

// NotificationInterface defines the contract for run report delivery
type NotificationInterface interface {
	SendReport(report *models.Report) error
}
