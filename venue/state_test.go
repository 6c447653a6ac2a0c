package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weddingplanner/filter"
	"weddingplanner/seed"
)

func names(s State) []string {
	out := make([]string, len(s.Visible))
	for i, v := range s.Visible {
		out[i] = v.Name
	}
	return out
}

func TestReduceDefaultsShowEverythingByRating(t *testing.T) {
	s := Reduce(NewState(), Loaded{Venues: seed.Venues()})

	assert.Equal(t, 10, s.ResultCount())
	assert.Equal(t, []string{
		"Sunset Beach Resort", "Desert Oasis Resort",
		"Royal Palace Gardens", "Garden Paradise Resort",
		"Heritage Haveli", "Riverside Retreat",
		"Metropolitan Grand Hotel", "Crystal Banquet Hall",
		"Hillside Manor", "Urban Rooftop Venue",
	}, names(s))
	assert.Equal(t, []string{
		"All", "Bangalore", "Delhi", "Goa", "Jaisalmer", "Kerala",
		"Mumbai", "Pune", "Rajasthan", "Rishikesh", "Shimla",
	}, s.Regions)
}

func TestReduceBudgetOverlap(t *testing.T) {
	s := Reduce(NewState(), Loaded{Venues: seed.Venues()})

	s = Reduce(s, BudgetChanged{Min: 0, Max: 150000})
	assert.Equal(t, []string{
		"Heritage Haveli", "Crystal Banquet Hall", "Hillside Manor", "Urban Rooftop Venue",
	}, names(s))

	s = Reduce(s, RegionSelected{Region: "Maharashtra"})
	assert.Equal(t, []string{"Urban Rooftop Venue"}, names(s))
}

func TestReduceCapacityAndQuery(t *testing.T) {
	s := Reduce(NewState(), Loaded{Venues: seed.Venues()})

	s = Reduce(s, CapacityChanged{Min: 550, Max: 1000})
	assert.Equal(t, []string{"Crystal Banquet Hall"}, names(s))

	s = Reduce(s, QueryChanged{Query: "beach"})
	assert.Empty(t, s.Visible)
	assert.Len(t, s.Regions, 11, "regions reflect the full catalogue")
}

func TestFiltersClearedRestoresDefaults(t *testing.T) {
	s := Reduce(NewState(), Loaded{Venues: seed.Venues()})
	s = Reduce(s, QueryChanged{Query: "resort"})
	s = Reduce(s, RegionSelected{Region: "Goa"})
	s = Reduce(s, BudgetChanged{Min: 10, Max: 20})
	s = Reduce(s, FiltersToggled{})

	s = Reduce(s, FiltersCleared{})

	assert.Equal(t, filter.DefaultVenueCriteria(), s.Criteria)
	assert.Equal(t, 10, s.ResultCount())
	assert.True(t, s.ShowFilters, "clearing does not close the panel")

	s = Reduce(s, FiltersToggled{})
	assert.False(t, s.ShowFilters)
}
