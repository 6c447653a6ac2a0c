package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"weddingplanner/filter"
)

func intPtr(n int) *int { return &n }

func TestVenueQuery_ToCriteria(t *testing.T) {
	tests := []struct {
		name  string
		query VenueQuery
		want  filter.VenueCriteria
	}{
		{
			name:  "empty query keeps defaults",
			query: VenueQuery{},
			want:  filter.DefaultVenueCriteria(),
		},
		{
			name:  "max budget only",
			query: VenueQuery{MaxBudget: intPtr(150000)},
			want: filter.VenueCriteria{
				Region:   filter.All,
				Budget:   filter.Range{Min: 0, Max: 150000},
				Capacity: filter.DefaultCapacity,
			},
		},
		{
			name: "everything set",
			query: VenueQuery{
				Query:       "palace",
				Region:      "Udaipur",
				MinBudget:   intPtr(100),
				MaxBudget:   intPtr(200),
				MinCapacity: intPtr(50),
				MaxCapacity: intPtr(300),
			},
			want: filter.VenueCriteria{
				Query:    "palace",
				Region:   "Udaipur",
				Budget:   filter.Range{Min: 100, Max: 200},
				Capacity: filter.Range{Min: 50, Max: 300},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.ToCriteria())
		})
	}
}
