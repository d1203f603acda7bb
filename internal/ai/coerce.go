package ai

import (
	"strconv"
	"strings"
)

// toInt casts a decoded JSON value to an integer with a best-effort
// conversion, returning def when the value is absent or uncastable
func toInt(value interface{}, def int) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		if parsed, err := strconv.Atoi(trimmed); err == nil {
			return parsed
		}
		if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return int(parsed)
		}
	}
	return def
}

// clamp bounds an integer to [min, max]
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// toString casts a decoded JSON value to a string, defaulting to empty
func toString(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

// toStringSlice casts a decoded JSON array to a string slice, keeping only
// string elements; absent or malformed input yields an empty slice
func toStringSlice(value interface{}) []string {
	result := []string{}
	items, ok := value.([]interface{})
	if !ok {
		return result
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
