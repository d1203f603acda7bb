// Package notifications delivers run reports over a webhook and/or email.
// Both channels are optional; an unconfigured channel is skipped silently.
package notifications

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/viralops/viral-content-bot/internal/config"
	"github.com/viralops/viral-content-bot/internal/models"
	"gopkg.in/gomail.v2"
)

// Service handles sending run reports via configured channels
type Service struct {
	config *config.Config
	client *resty.Client
}

// Ensure Service implements NotificationInterface
var _ NotificationInterface = (*Service)(nil)

// WebhookMessage is a MessageCard-style payload accepted by Teams-compatible
// incoming webhooks
type WebhookMessage struct {
	Type     string           `json:"@type"`
	Context  string           `json:"@context"`
	Title    string           `json:"title"`
	Text     string           `json:"text"`
	Sections []WebhookSection `json:"sections,omitempty"`
}

type WebhookSection struct {
	ActivityTitle string        `json:"activityTitle,omitempty"`
	ActivityText  string        `json:"activityText,omitempty"`
	Facts         []WebhookFact `json:"facts,omitempty"`
	Markdown      bool          `json:"markdown,omitempty"`
}

type WebhookFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

// SendReport sends a run report via every configured channel
func (s *Service) SendReport(report *models.Report) error {
	var errs []string

	if s.config.WebhookURL != "" {
		if err := s.sendToWebhook(report); err != nil {
			logrus.Errorf("Failed to send webhook notification: %v", err)
			errs = append(errs, fmt.Sprintf("webhook: %v", err))
		} else {
			logrus.Info("Successfully sent run report to webhook")
		}
	}

	if s.config.NotificationEmail != "" {
		if err := s.sendEmail(report); err != nil {
			logrus.Errorf("Failed to send email notification: %v", err)
			errs = append(errs, fmt.Sprintf("email: %v", err))
		} else {
			logrus.Info("Successfully sent run report via email")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("notification errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

func (s *Service) sendToWebhook(report *models.Report) error {
	message := s.buildWebhookMessage(report)

	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post(s.config.WebhookURL)

	if err != nil {
		return fmt.Errorf("failed to send webhook message: %w", err)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}

func (s *Service) buildWebhookMessage(report *models.Report) *WebhookMessage {
	message := &WebhookMessage{
		Type:    "MessageCard",
		Context: "https://schema.org/extensions",
		Title:   fmt.Sprintf("Viral Content Report - %s", report.Niche),
		Text: fmt.Sprintf("Analyzed %d posts and generated %d drafts for %s",
			report.TotalAnalyzed, len(report.GeneratedPosts), report.Platform),
	}

	facts := []WebhookFact{
		{Name: "Posts Analyzed", Value: fmt.Sprintf("%d", report.TotalAnalyzed)},
		{Name: "Generated", Value: report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")},
	}
	for sentiment, count := range report.Summary {
		facts = append(facts, WebhookFact{
			Name:  fmt.Sprintf("Sentiment %s/5", sentiment),
			Value: fmt.Sprintf("%d", count),
		})
	}
	message.Sections = append(message.Sections, WebhookSection{
		ActivityTitle: "Summary",
		Facts:         facts,
		Markdown:      true,
	})

	if len(report.GeneratedPosts) > 0 {
		var drafts []string
		for _, post := range report.GeneratedPosts {
			drafts = append(drafts, fmt.Sprintf("**%s** (score %d): %s",
				post.Tone, post.ViralScore, firstLine(post.Hook)))
		}
		message.Sections = append(message.Sections, WebhookSection{
			ActivityTitle: "Generated Drafts",
			ActivityText:  strings.Join(drafts, "\n\n"),
			Markdown:      true,
		})
	}

	return message
}

func (s *Service) sendEmail(report *models.Report) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", s.config.NotificationEmail)
	m.SetHeader("Subject", fmt.Sprintf("Viral Content Report - %s (%s)",
		report.Niche, report.GeneratedAt.Format("2006-01-02")))
	m.SetBody("text/html", s.buildEmailBody(report))

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *Service) buildEmailBody(report *models.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<h2>Viral Content Report - %s</h2>", report.Niche))
	b.WriteString(fmt.Sprintf("<p>Analyzed %d %s posts. Sentiment breakdown:</p><ul>",
		report.TotalAnalyzed, report.Platform))
	for sentiment, count := range report.Summary {
		b.WriteString(fmt.Sprintf("<li>%s/5: %d posts</li>", sentiment, count))
	}
	b.WriteString("</ul><h3>Generated Drafts</h3>")

	for _, post := range report.GeneratedPosts {
		b.WriteString(fmt.Sprintf("<h4>%s (viral score %d)</h4>", post.Tone, post.ViralScore))
		b.WriteString(fmt.Sprintf("<p><strong>%s</strong></p>", firstLine(post.Hook)))
		b.WriteString(fmt.Sprintf("<p>%s</p>", strings.ReplaceAll(post.Body, "\n", "<br>")))
		b.WriteString(fmt.Sprintf("<p><em>%s</em></p>", post.CTA))
	}

	return b.String()
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
