package filter

import (
	"slices"

	"weddingplanner/domain/entity"
)

// Categories lists the distinct task categories, sorted, after the All sentinel.
// Pass the full collection, not a filtered view, so every option stays reachable.
func Categories(tasks []entity.Task) []string {
	values := make([]string, 0, len(tasks))
	for _, t := range tasks {
		values = append(values, t.Category)
	}
	return withAll(values)
}

// Regions lists the distinct venue regions (see entity.Venue.Region), sorted,
// after the All sentinel.
func Regions(venues []entity.Venue) []string {
	values := make([]string, 0, len(venues))
	for _, v := range venues {
		values = append(values, v.Region())
	}
	return withAll(values)
}

func withAll(values []string) []string {
	slices.Sort(values)
	values = slices.Compact(values)
	return append([]string{All}, values...)
}
