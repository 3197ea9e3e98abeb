package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportPage = `<html><body>
<div class="feed-shared-update-v2">
  <div class="update-components-text"><span dir="ltr">First post about my career.</span></div>
  <span class="social-details-social-counts__reactions-count">1,024</span>
</div>
<div class="feed-shared-update-v2">
  <div class="update-components-text"><span dir="ltr">Deuxième post.</span></div>
  <span class="social-details-social-counts__reactions-count">7</span>
</div>
<div class="feed-shared-update-v2">
  <div class="update-components-text"><span dir="ltr">First post about my career.</span></div>
</div>
<div class="feed-shared-update-v2">
  <div class="update-components-text"><span dir="ltr">   </span></div>
</div>
</body></html>`

func TestPosts(t *testing.T) {
	posts, err := Posts(strings.NewReader(exportPage), DefaultSelectors)
	require.NoError(t, err)

	// Duplicate and empty updates are dropped.
	require.Len(t, posts, 2)
	assert.Equal(t, "First post about my career.", posts[0].Text)
	assert.Equal(t, 1024, posts[0].Engagement)
	assert.Equal(t, "Deuxième post.", posts[1].Text)
	assert.Equal(t, 7, posts[1].Engagement)
}

func TestPosts_NoMatches(t *testing.T) {
	posts, err := Posts(strings.NewReader("<html><body><p>nothing here</p></body></html>"), DefaultSelectors)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPosts_CustomSelectors(t *testing.T) {
	page := `<article class="p"><p class="t">custom layout post</p><em class="r">42</em></article>`
	posts, err := Posts(strings.NewReader(page), Selectors{
		Post:      "article.p",
		Text:      "p.t",
		Reactions: "em.r",
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "custom layout post", posts[0].Text)
	assert.Equal(t, 42, posts[0].Engagement)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"7", 7},
		{"1,024", 1024},
		{" 12 ", 12},
		{"1 024", 1024},
		{"lots", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCount(tt.in))
		})
	}
}
