package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postprep/postprep/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func enriched(text, lang string, lines int, tags ...string) model.EnrichedPost {
	if tags == nil {
		tags = []string{}
	}
	return model.EnrichedPost{
		Post:     model.Post{Text: text},
		Metadata: model.Metadata{LineCount: lines, Language: lang, Tags: tags},
	}
}

func TestReplaceAndCount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Replace(ctx, []model.EnrichedPost{
		enriched("one", "English", 1, "tech"),
		enriched("two", "French", 2),
	}))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Replace is a full overwrite, not an append.
	require.NoError(t, s.Replace(ctx, []model.EnrichedPost{
		enriched("three", "English", 1),
	}))
	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReplace_Empty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Replace(ctx, nil))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLanguageCounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Replace(ctx, []model.EnrichedPost{
		enriched("a", "English", 1),
		enriched("b", "English", 1),
		enriched("c", "French", 1),
	}))

	got, err := s.LanguageCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []KV{{"English", 2}, {"French", 1}}, got)
}

func TestTagCounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Replace(ctx, []model.EnrichedPost{
		enriched("a", "English", 1, "tech", "career"),
		enriched("b", "English", 1, "tech"),
		enriched("c", "French", 1),
	}))

	got, err := s.TagCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []KV{{"tech", 2}, {"career", 1}}, got)
}
