package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"weddingplanner/filter"
)

func (a *app) checklistCmd() *cobra.Command {
	var query, category string

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "List checklist tasks matching a query and category",
		Long: `List checklist tasks. Pending tasks come first, and within each group
higher priority comes first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.checklist.Search(cmd.Context(), query, category)
			if err != nil {
				return fmt.Errorf("failed to search checklist: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(out, st)
			}

			if st.ResultCount() == 0 {
				fmt.Fprintln(out, "No tasks found.")
			} else {
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "DONE\tPRIORITY\tCATEGORY\tTITLE")
				for _, t := range st.Visible {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", checkbox(t.Completed), t.Priority, t.Category, t.Title)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "\n%d results, %s\n", st.ResultCount(), progressLine(st.Stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "match title or description, case-insensitive")
	cmd.Flags().StringVarP(&category, "category", "c", filter.All, "restrict to one category")
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List checklist categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.checklist.Categories(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			if a.asJSON {
				return writeJSON(cmd.OutOrStdout(), categories)
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// progressLine renders stats as "3 of 10 tasks completed (30%)".
func progressLine(s filter.Stats) string {
	return fmt.Sprintf("%d of %d tasks completed (%.0f%%)", s.Completed, s.Total, s.Progress()*100)
}
