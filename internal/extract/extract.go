// Package extract pulls structured JSON values out of noisy free-form text,
// typically the reply of a generative model that wrapped its answer in
// markdown fences or preamble.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fenceMarker = regexp.MustCompile("```(?:json)?")

// clean strips markdown code fences and surrounding whitespace/backticks
func clean(text string) string {
	text = fenceMarker.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, "`")
	return strings.TrimSpace(text)
}

// Object extracts a JSON object from text. It scans for the first substring
// bounded by the first '{' and the last '}' (greedy - nested or string-embedded
// braces can over-capture, which is accepted), then falls back to parsing the
// whole cleaned text. On total failure it returns an empty map, never an error;
// callers apply field-level defaults.
func Object(text string) map[string]interface{} {
	cleaned := clean(text)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")

	if start >= 0 && end > start {
		var result map[string]interface{}
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err == nil {
			return result
		}
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
		return result
	}

	return map[string]interface{}{}
}

// Array extracts a JSON array from text using the same greedy bound scan as
// Object, bounded by the first '[' and the last ']'. Unlike Object, total
// failure returns an error: an empty array cannot distinguish "no items" from
// "parse failure", so the caller decides how to fall back.
func Array(text string) ([]interface{}, error) {
	cleaned := clean(text)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")

	if start >= 0 && end > start {
		var result []interface{}
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err == nil {
			return result, nil
		}
	}

	var result []interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
		return result, nil
	}

	return nil, fmt.Errorf("no JSON array found in response text")
}
