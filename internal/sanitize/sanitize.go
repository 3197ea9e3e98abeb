// Package sanitize normalizes post text to valid UTF-8. LinkedIn exports and
// scraped datasets routinely carry broken surrogate pairs and truncated
// multi-byte sequences that would otherwise poison prompts and output files.
package sanitize

import (
	"strings"
	"unicode/utf8"

	"github.com/postprep/postprep/internal/model"
)

const replacement = "�"

// String replaces every invalid UTF-8 sequence (including unpaired
// surrogates) with U+FFFD. Valid input is returned unchanged.
func String(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, replacement)
}

// Post returns a copy of p with its text sanitized.
func Post(p model.Post) model.Post {
	p.Text = String(p.Text)
	return p
}

// Posts sanitizes a whole raw dataset in place.
func Posts(ps []model.Post) {
	for i := range ps {
		ps[i] = Post(ps[i])
	}
}
