package query

import "strings"

// ParseLaneConditions splits a comma-separated list into trimmed,
// lower-cased tokens. An input without any token is rejected.
func ParseLaneConditions(raw string) ([]string, error) {
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		t := strings.ToLower(strings.TrimSpace(part))
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil, invalidParam("laneConditions", "at least one lane condition is required")
	}
	return tokens, nil
}
