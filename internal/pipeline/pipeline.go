// Package pipeline drives the preprocess run: load raw posts, sanitize,
// enrich each one with metadata, write the enriched dataset back out.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/postprep/postprep/internal/logger"
	"github.com/postprep/postprep/internal/metadata"
	"github.com/postprep/postprep/internal/model"
	"github.com/postprep/postprep/internal/sanitize"
)

// Enricher annotates one post's text with metadata. It must always produce
// metadata; failures are handled inside (retry, then heuristics).
type Enricher interface {
	ExtractWithFallback(ctx context.Context, text string) model.Metadata
}

// Heuristic is an Enricher that never calls an LLM. Used for --no-llm runs.
type Heuristic struct{}

func (Heuristic) ExtractWithFallback(_ context.Context, text string) model.Metadata {
	return metadata.Fallback(text)
}

type Pipeline struct {
	enricher Enricher
	lggr     logger.Logger
}

func New(enricher Enricher, lggr logger.Logger) *Pipeline {
	return &Pipeline{enricher: enricher, lggr: lggr}
}

// Run reads the raw dataset at inPath, enriches every post, and writes the
// result to outPath as indented JSON. Every input post appears in the
// output exactly once. The returned slice is the written dataset.
func (p *Pipeline) Run(ctx context.Context, inPath, outPath string) ([]model.EnrichedPost, error) {
	posts, err := readRaw(inPath)
	if err != nil {
		return nil, err
	}
	sanitize.Posts(posts)

	runID := uuid.NewString()
	p.lggr.Infow("starting preprocess run", "run", runID, "posts", len(posts), "in", inPath)

	enriched := make([]model.EnrichedPost, 0, len(posts))
	for i, post := range posts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("preprocess aborted at post %d/%d: %w", i+1, len(posts), err)
		}

		md := p.enricher.ExtractWithFallback(ctx, post.Text)
		enriched = append(enriched, model.EnrichedPost{Post: post, Metadata: md})

		p.lggr.Infow("processed post", "run", runID, "index", i+1, "total", len(posts),
			"language", md.Language, "tags", md.Tags)
	}

	if err := writeEnriched(outPath, enriched); err != nil {
		return nil, err
	}
	p.lggr.Infow("preprocess run complete", "run", runID, "posts", len(enriched), "out", outPath)

	return enriched, nil
}

func readRaw(path string) ([]model.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read raw dataset: %w", err)
	}
	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parse raw dataset %s: %w", path, err)
	}
	return posts, nil
}

func writeEnriched(path string, posts []model.EnrichedPost) error {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal enriched dataset: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write enriched dataset: %w", err)
	}
	return nil
}
