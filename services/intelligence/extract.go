package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the first JSON object out of a completion response.
// Model output is often wrapped in markdown code fences or surrounded by
// prose, so this scans for the first balanced {...} block and unmarshals it
// into out.
func ExtractJSON(raw string, out interface{}) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	if start < 0 {
		return fmt.Errorf("no JSON object in completion output")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(cleaned); i++ {
		c := cleaned[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return json.Unmarshal([]byte(cleaned[start:i+1]), out)
			}
		}
	}
	return fmt.Errorf("unbalanced JSON object in completion output")
}
