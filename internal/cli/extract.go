package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/postprep/postprep/internal/extract"
)

func newExtractCmd() *cobra.Command {
	var (
		in  string
		out string
		sel = extract.DefaultSelectors
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract raw posts from a saved LinkedIn activity page",
		Example: `  # Parse a page saved with the browser into a raw dataset
  postprep extract --in activity.html --out Dataset/RawData.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("open export: %w", err)
			}
			defer f.Close()

			posts, err := extract.Posts(f, sel)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(posts, "", "  ")
			if err != nil {
				return err
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write raw dataset: %w", err)
			}

			lggr.Infow("extracted posts", "count", len(posts), "out", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "saved LinkedIn activity page (HTML)")
	cmd.Flags().StringVar(&out, "out", "Dataset/RawData.json", "output raw dataset (JSON)")
	cmd.Flags().StringVar(&sel.Post, "post-selector", sel.Post, "CSS selector for a post container")
	cmd.Flags().StringVar(&sel.Text, "text-selector", sel.Text, "CSS selector for the post body")
	cmd.Flags().StringVar(&sel.Reactions, "reactions-selector", sel.Reactions, "CSS selector for the reaction count")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
