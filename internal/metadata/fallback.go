package metadata

import (
	"strings"

	"github.com/postprep/postprep/internal/model"
)

// frenchHints are common French function words; more than three substring
// hits marks a post as French.
var frenchHints = []string{
	"le", "la", "les", "de", "du", "des", "et", "est", "une", "un", "ce", "cette",
}

// tagKeywords maps a tag to the keywords that imply it. Ordered so fallback
// tagging is deterministic.
var tagKeywords = []struct {
	tag      string
	keywords []string
}{
	{"career", []string{"career", "job", "work", "employment"}},
	{"business", []string{"business", "company", "startup", "entrepreneur"}},
	{"tech", []string{"technology", "tech", "ai", "digital", "software"}},
	{"leadership", []string{"leadership", "management", "team", "leader"}},
	{"marketing", []string{"marketing", "brand", "social media"}},
	{"networking", []string{"network", "connection", "professional"}},
}

// Fallback derives metadata from the post text alone, for when the LLM is
// unreachable or keeps returning garbage.
func Fallback(text string) model.Metadata {
	lower := strings.ToLower(text)

	frenchCount := 0
	for _, w := range frenchHints {
		if strings.Contains(lower, w) {
			frenchCount++
		}
	}
	language := "English"
	if frenchCount > 3 {
		language = "French"
	}

	tags := []string{}
	for _, tk := range tagKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, tk.tag)
				break
			}
		}
		if len(tags) >= maxTags {
			break
		}
	}

	return model.Metadata{
		LineCount: strings.Count(text, "\n") + 1,
		Language:  language,
		Tags:      tags,
	}
}
