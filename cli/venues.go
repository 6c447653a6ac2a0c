package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"weddingplanner/filter"
)

func (a *app) venuesCmd() *cobra.Command {
	c := filter.DefaultVenueCriteria()

	cmd := &cobra.Command{
		Use:   "venues",
		Short: "List venues matching text, region, budget and capacity",
		Long: `List venues, best rated first. A venue passes a budget or capacity filter
when its advertised range overlaps the requested one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Budget.Min > c.Budget.Max || c.Capacity.Min > c.Capacity.Max {
				return fmt.Errorf("minimum must not exceed maximum")
			}

			st, err := a.venues.Browse(cmd.Context(), c)
			if err != nil {
				return fmt.Errorf("failed to search venues: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(out, st)
			}

			if st.ResultCount() == 0 {
				fmt.Fprintln(out, "No venues found.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RATING\tNAME\tLOCATION\tPRICE\tCAPACITY")
			for _, v := range st.Visible {
				fmt.Fprintf(w, "%.1f\t%s\t%s\t%s\t%s\n", v.Rating, v.Name, v.Location, v.PriceRange, v.Capacity)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\n%d results\n", st.ResultCount())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&c.Query, "query", "q", "", "match name, location or description, case-insensitive")
	f.StringVarP(&c.Region, "region", "r", filter.All, "restrict to locations containing this region")
	f.IntVar(&c.Budget.Min, "min-budget", filter.DefaultBudget.Min, "lowest acceptable price")
	f.IntVar(&c.Budget.Max, "max-budget", filter.DefaultBudget.Max, "highest acceptable price")
	f.IntVar(&c.Capacity.Min, "min-capacity", filter.DefaultCapacity.Min, "fewest guests")
	f.IntVar(&c.Capacity.Max, "max-capacity", filter.DefaultCapacity.Max, "most guests")
	return cmd
}

func (a *app) regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List venue regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := a.venues.Regions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list regions: %w", err)
			}
			if a.asJSON {
				return writeJSON(cmd.OutOrStdout(), regions)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(regions, "\n"))
			return nil
		},
	}
}
