package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRunRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantErr     bool
		wantUseMock bool
	}{
		{
			name:        "use_mock absent defaults to true",
			body:        `{"niche": "AI startups"}`,
			wantUseMock: true,
		},
		{
			name:        "use_mock false is preserved",
			body:        `{"niche": "AI startups", "use_mock": false}`,
			wantUseMock: false,
		},
		{
			name:        "use_mock true is preserved",
			body:        `{"niche": "AI startups", "use_mock": true}`,
			wantUseMock: true,
		},
		{
			name:        "empty object defaults to true",
			body:        `{}`,
			wantUseMock: true,
		},
		{
			name:    "invalid JSON",
			body:    `{"niche":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := decodeRunRequest(strings.NewReader(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUseMock, req.UseMock)
		})
	}
}
