package metadata

import (
	"regexp"
	"strings"
)

// Chat models rarely honor "return ONLY JSON": they wrap the object in
// markdown fences or prose. These patterns dig the object out anyway.
var (
	reFencedJSON     = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	reStandaloneJSON = regexp.MustCompile(`(?s)\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
)

// extractJSON pulls the most plausible JSON object out of free-form LLM
// output. It tries, in order: a fenced ```json block, the largest standalone
// object, and finally the span between the first '{' and the last '}'.
// Returns "" when nothing object-shaped is present.
func extractJSON(text string) string {
	if m := reFencedJSON.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	if matches := reStandaloneJSON.FindAllString(text, -1); len(matches) > 0 {
		best := matches[0]
		for _, m := range matches[1:] {
			if len(m) > len(best) {
				best = m
			}
		}
		return strings.TrimSpace(best)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && start < end {
		return strings.TrimSpace(text[start : end+1])
	}

	return ""
}
