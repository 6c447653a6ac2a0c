// Package cli implements the planner command line: read-only checklist and
// venue searches over the bundled sample data, plus a configuration check.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"weddingplanner/checklist"
	"weddingplanner/infrastructure/logger"
	"weddingplanner/repository/memory"
	"weddingplanner/seed"
	"weddingplanner/venue"
)

// app holds the services every subcommand runs against
type app struct {
	checklist *checklist.Service
	venues    *venue.Service
	asJSON    bool
}

// NewRootCmd builds the planner command tree over the sample data
func NewRootCmd() *cobra.Command {
	a := &app{
		checklist: checklist.NewService(memory.NewTaskRepository(seed.Tasks()), logger.Named("checklist")),
		venues:    venue.NewService(memory.NewVenueRepository(seed.Venues()), logger.Named("venue")),
	}

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Search the wedding checklist and venue catalogue",
		Long:          `Planner filters the sample wedding checklist and venue catalogue from the command line.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		a.checklistCmd(),
		a.categoriesCmd(),
		a.venuesCmd(),
		a.regionsCmd(),
		a.configCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
