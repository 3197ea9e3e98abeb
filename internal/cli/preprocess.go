package cli

import (
	"github.com/spf13/cobra"

	"github.com/postprep/postprep/internal/config"
	"github.com/postprep/postprep/internal/llm"
	"github.com/postprep/postprep/internal/metadata"
	"github.com/postprep/postprep/internal/pipeline"
	"github.com/postprep/postprep/internal/store"
)

func newPreprocessCmd() *cobra.Command {
	var (
		in     string
		out    string
		dbPath string
		noLLM  bool
	)

	cmd := &cobra.Command{
		Use:   "preprocess",
		Short: "Enrich a raw post dataset with metadata",
		Long: `Reads a raw JSON dataset, annotates every post with line count, language
and topic tags via the Groq API (GROQ_API_KEY), and writes the enriched
dataset. Posts the LLM cannot classify get heuristic metadata instead.`,
		Example: `  # Enrich the default dataset
  postprep preprocess

  # Enrich and persist to SQLite for later inspection
  postprep preprocess --in raw.json --out processed.json --db posts.db

  # Offline run, heuristics only
  postprep preprocess --no-llm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			var enricher pipeline.Enricher = pipeline.Heuristic{}
			if !noLLM {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				if err := cfg.Validate(); err != nil {
					return err
				}
				enricher = metadata.New(llm.NewGroq(cfg), lggr)
			}

			enriched, err := pipeline.New(enricher, lggr).Run(cmd.Context(), in, out)
			if err != nil {
				return err
			}

			if dbPath != "" {
				st, err := store.Open(cmd.Context(), dbPath)
				if err != nil {
					return err
				}
				defer st.Close()
				if err := st.Replace(cmd.Context(), enriched); err != nil {
					return err
				}
				lggr.Infow("persisted enriched posts", "count", len(enriched), "db", dbPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "Dataset/RawData.json", "raw dataset (JSON)")
	cmd.Flags().StringVar(&out, "out", "Dataset/Preprocessed_posts.json", "enriched dataset output (JSON)")
	cmd.Flags().StringVar(&dbPath, "db", "", "optional SQLite database to persist enriched posts")
	cmd.Flags().BoolVar(&noLLM, "no-llm", false, "skip the LLM and use heuristic metadata only")

	return cmd
}
