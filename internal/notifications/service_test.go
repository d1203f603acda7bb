package notifications

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viralops/viral-content-bot/internal/config"
	"github.com/viralops/viral-content-bot/internal/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		GeneratedAt:   time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Niche:         "AI tools",
		Platform:      "LinkedIn",
		TotalAnalyzed: 3,
		GeneratedPosts: []models.GeneratedPost{
			{Hook: "First line\nSecond line", Tone: "Data-Driven", ViralScore: 8},
		},
		Summary: map[string]int{"4": 2, "2": 1},
	}
}

func TestService_SendReport_Webhook(t *testing.T) {
	var received WebhookMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := NewService(&config.Config{WebhookURL: server.URL})

	require.NoError(t, service.SendReport(sampleReport()))

	assert.Equal(t, "MessageCard", received.Type)
	assert.Equal(t, "Viral Content Report - AI tools", received.Title)
	require.Len(t, received.Sections, 2)
	assert.Equal(t, "Summary", received.Sections[0].ActivityTitle)
	// Multi-line hooks collapse to their first line in the draft listing
	assert.Contains(t, received.Sections[1].ActivityText, "First line")
	assert.NotContains(t, received.Sections[1].ActivityText, "Second line")
}

func TestService_SendReport_WebhookFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewService(&config.Config{WebhookURL: server.URL})

	err := service.SendReport(sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestService_SendReport_NoChannels(t *testing.T) {
	service := NewService(&config.Config{})

	assert.NoError(t, service.SendReport(sampleReport()))
}
