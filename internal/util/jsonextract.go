package util

import (
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when no JSON object can be located in the input.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// ExtractJSONObject locates the JSON object embedded in noisy LLM output and
// returns it as a raw string. It first runs a balanced-brace scan that respects
// double-quoted strings and backslash escapes, so literal braces inside string
// values do not mis-slice the object. If the scan finds no complete object it
// falls back to slicing between the first '{' and the last '}'.
func ExtractJSONObject(raw string) (string, error) {
	if s, ok := scanBalancedObject(raw); ok {
		return s, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONObject
	}
	return raw[start : end+1], nil
}

// scanBalancedObject returns the first balanced top-level {...} in raw.
func scanBalancedObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}
