package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "Bare JSON object",
			input: `{"overall_sentiment": 4, "key_insights": "resonated"}`,
		},
		{
			name:  "Fenced with json tag",
			input: "```json\n{\"overall_sentiment\": 4, \"key_insights\": \"resonated\"}\n```",
		},
		{
			name:  "Fenced without tag",
			input: "```\n{\"overall_sentiment\": 4, \"key_insights\": \"resonated\"}\n```",
		},
		{
			name:  "Preamble before object",
			input: "Here is the analysis you asked for:\n{\"overall_sentiment\": 4, \"key_insights\": \"resonated\"}",
		},
		{
			name:  "Trailing commentary after object",
			input: "{\"overall_sentiment\": 4, \"key_insights\": \"resonated\"}\nLet me know if you need anything else!",
		},
		{
			name:  "Fences plus preamble plus trailing backticks",
			input: "Sure! ```json\n{\"overall_sentiment\": 4, \"key_insights\": \"resonated\"}``",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Object(tt.input)
			assert.Equal(t, float64(4), result["overall_sentiment"])
			assert.Equal(t, "resonated", result["key_insights"])
		})
	}
}

func TestObject_NestedValues(t *testing.T) {
	input := "```json\n{\"common_questions\": [\"What tools?\", \"How long?\"], \"meta\": {\"model\": \"flash\"}}\n```"

	result := Object(input)

	questions, ok := result["common_questions"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"What tools?", "How long?"}, questions)

	meta, ok := result["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "flash", meta["model"])
}

func TestObject_Garbage(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Plain prose", input: "I could not produce an analysis for this post."},
		{name: "Empty string", input: ""},
		{name: "Only fences", input: "```json\n```"},
		{name: "Unbalanced braces", input: "{\"overall_sentiment\": 4"},
		{name: "Brace noise", input: "} not json {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Object(tt.input)
			assert.NotNil(t, result)
			assert.Empty(t, result)
		})
	}
}

func TestObject_GreedyBounds(t *testing.T) {
	// Two objects in one reply: the greedy scan spans both and fails to parse
	// the span, and the whole-text parse fails too, so the result is empty.
	// This mirrors the accepted limitation of the greedy bound match.
	input := `{"a": 1} and also {"b": 2}`

	result := Object(input)
	assert.Empty(t, result)
}

func TestArray_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "Bare array",
			input: `[{"hook": "one"}, {"hook": "two"}]`,
		},
		{
			name:  "Fenced array",
			input: "```json\n[{\"hook\": \"one\"}, {\"hook\": \"two\"}]\n```",
		},
		{
			name:  "Array with preamble",
			input: "Here are your posts:\n[{\"hook\": \"one\"}, {\"hook\": \"two\"}]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Array(tt.input)
			require.NoError(t, err)
			require.Len(t, result, 2)

			first, ok := result[0].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "one", first["hook"])
		})
	}
}

func TestArray_Garbage(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Plain prose", input: "Sorry, I cannot generate posts right now."},
		{name: "Empty string", input: ""},
		{name: "Object instead of array", input: `{"hook": "one"}`},
		{name: "Unbalanced brackets", input: `[{"hook": "one"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Array(tt.input)
			assert.Error(t, err)
		})
	}
}
