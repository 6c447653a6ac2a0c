// Package filter holds the pure filter-sort engines behind the checklist and
// venue views, together with facet extraction and summary stats.
//
// Every function here reads its input and returns a fresh slice. Callers may
// pass shared snapshots without copying them first.
package filter

import (
	"cmp"
	"slices"
	"strings"

	"weddingplanner/domain/entity"
)

// All is the sentinel category/region value that disables the constraint.
const All = "All"

// Tasks returns the tasks matching query and category, incomplete tasks first
// and higher priority first within each group. Equal tasks keep their input order.
func Tasks(all []entity.Task, query, category string) []entity.Task {
	q := strings.ToLower(query)

	out := make([]entity.Task, 0, len(all))
	for _, t := range all {
		if matchesTask(t, q, category) {
			out = append(out, t)
		}
	}

	slices.SortStableFunc(out, compareTasks)
	return out
}

func matchesTask(t entity.Task, lowerQuery, category string) bool {
	matchesSearch := lowerQuery == "" ||
		strings.Contains(strings.ToLower(t.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(t.Description), lowerQuery)

	matchesCategory := category == All || t.Category == category

	return matchesSearch && matchesCategory
}

func compareTasks(a, b entity.Task) int {
	if a.Completed != b.Completed {
		if !a.Completed {
			return -1
		}
		return 1
	}
	return cmp.Compare(b.Priority, a.Priority)
}
