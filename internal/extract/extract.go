// Package extract builds a raw post dataset from a saved LinkedIn activity
// page. It works on the HTML a browser writes with "Save Page As", never
// against LinkedIn's API.
package extract

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/postprep/postprep/internal/model"
	"github.com/postprep/postprep/internal/sanitize"
)

// Selectors locate posts inside the saved page. LinkedIn renames its CSS
// classes now and then, so these are tweakable via flags.
type Selectors struct {
	Post      string // post container
	Text      string // post body, within the container
	Reactions string // reaction count, within the container
}

// DefaultSelectors match the feed markup as of the current exports.
var DefaultSelectors = Selectors{
	Post:      "div.feed-shared-update-v2",
	Text:      ".update-components-text span[dir=ltr]",
	Reactions: ".social-details-social-counts__reactions-count",
}

// Posts parses the saved page and returns one Post per feed update. Updates
// with an empty body are dropped, and duplicate bodies (LinkedIn repeats
// reshared text) are collapsed to their first occurrence.
func Posts(r io.Reader, sel Selectors) ([]model.Post, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse export html: %w", err)
	}

	seen := make(map[string]bool)
	posts := make([]model.Post, 0)

	doc.Find(sel.Post).Each(func(_ int, s *goquery.Selection) {
		text := sanitize.String(strings.TrimSpace(s.Find(sel.Text).First().Text()))
		if text == "" || seen[text] {
			return
		}
		seen[text] = true

		posts = append(posts, model.Post{
			Text:       text,
			Engagement: parseCount(s.Find(sel.Reactions).First().Text()),
		})
	})

	return posts, nil
}

// parseCount turns display counts like "1,024" into ints. Unparseable or
// missing counts read as zero rather than failing the whole export.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
