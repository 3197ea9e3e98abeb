package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/postprep/postprep/internal/store"
)

func newStatsCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Summarize an enriched post database",
		Example: `  postprep stats --db posts.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			total, err := st.Count(cmd.Context())
			if err != nil {
				return err
			}
			languages, err := st.LanguageCounts(cmd.Context())
			if err != nil {
				return err
			}
			tags, err := st.TagCounts(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Metric", "Value"})
			table.Append([]string{"posts", strconv.Itoa(total)})
			for _, kv := range languages {
				table.Append([]string{"language: " + kv.Key, strconv.Itoa(kv.Count)})
			}
			for _, kv := range tags {
				table.Append([]string{"tag: " + kv.Key, strconv.Itoa(kv.Count)})
			}
			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database written by preprocess --db")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
